// Package softassert collects the outcomes of many condition
// evaluations and reports every failure at once, instead of
// stopping at the first. The collector is an explicit,
// caller-owned accumulator: each recorded outcome returns the
// collector for chaining, and a single Finish call raises one
// aggregate error enumerating all failures in recorded order.
package softassert

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/alex859/precise-assertions/pkg/condition"
)

// Collector accumulates evaluation outcomes across multiple
// checks. It is safe for concurrent use, though outcomes
// recorded from multiple goroutines are ordered by arrival.
type Collector struct {
	mu       sync.Mutex
	logger   zerolog.Logger
	checked  int
	failures []error
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets a structured logger that receives a debug
// event for every failed check. The default logger discards
// everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// New creates an empty Collector.
func New(opts ...Option) *Collector {
	c := &Collector{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Record stores the outcome of one evaluation under the given
// name and returns the collector for chaining. A non-nil err
// marks a malformed assertion (for example an out-of-range
// element index) and is recorded as a failure distinct from a
// non-match.
func (c *Collector) Record(
	name string,
	ev condition.Evaluation,
	err error,
) *Collector {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checked++

	switch {
	case err != nil:
		c.failures = append(c.failures, fmt.Errorf(
			"%s: malformed assertion: %w", name, err,
		))
		c.logger.Debug().
			Str("check", name).
			Err(err).
			Msg("malformed assertion recorded")

	case !ev.Matched:
		c.failures = append(c.failures, fmt.Errorf(
			"%s:\n%s", name, condition.Render(ev.Node),
		))
		c.logger.Debug().
			Str("check", name).
			Str("diagnostic", condition.Render(ev.Node)).
			Msg("failed check recorded")
	}

	return c
}

// Check evaluates a condition against a value and records the
// outcome under the given name. It is the usual entry point:
//
//	soft := softassert.New()
//	softassert.Check(soft, "john", cond, customer)
//	softassert.Check(soft, "mike", cond, other)
//	err := soft.Finish()
func Check[T any](
	c *Collector,
	name string,
	cond condition.Condition[T],
	value T,
) *Collector {
	ev, err := cond.Evaluate(value)
	return c.Record(name, ev, err)
}

// Checked returns how many outcomes have been recorded.
func (c *Collector) Checked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checked
}

// Failed returns how many recorded outcomes were failures.
func (c *Collector) Failed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.failures)
}

// Finish returns nil when every recorded outcome passed, and
// otherwise one aggregate error enumerating all failures in the
// order they were recorded. The collector may keep recording
// after Finish; a later Finish reports the full list again.
func (c *Collector) Finish() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result *multierror.Error
	for _, f := range c.failures {
		result = multierror.Append(result, f)
	}

	return result.ErrorOrNil()
}
