// Package condition provides composable, self-describing boolean
// predicates over structured values. Single-field conditions are
// combined into aggregate conditions over nested object graphs
// and collections, and every evaluation produces a tree of
// description nodes that a test runner can render as a readable
// failure diagnostic.
package condition

import "strings"

// Status constants for a single description node after one
// evaluation.
const (
	StatusUnknown = "unknown"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

// Node is one node of the diagnostic tree produced by an
// evaluation. Leaf conditions produce childless nodes; composite
// and nested conditions produce nodes whose children appear in
// construction order.
type Node struct {
	// Label is the static description of the condition that
	// produced this node.
	Label string `json:"label"`

	// Status is one of the Status* constants. It is set during
	// evaluation and never stored on the condition itself.
	Status string `json:"status"`

	// Detail holds the rendered actual value. It is populated
	// only when a verbose condition fails.
	Detail string `json:"detail,omitempty"`

	// Children holds the nodes of nested conditions, in the
	// order the conditions were supplied at construction.
	Children []Node `json:"children,omitempty"`
}

// Evaluation captures the outcome of evaluating one condition
// against one value.
type Evaluation struct {
	// Matched indicates whether the value satisfied the
	// condition.
	Matched bool `json:"matched"`

	// Node is the root of the diagnostic tree for this
	// evaluation.
	Node Node `json:"node"`
}

// Condition is an immutable, named predicate over a value of
// type T. Conditions carry no state across evaluations: the same
// condition may be evaluated any number of times, concurrently,
// against different values.
type Condition[T any] interface {
	// Evaluate checks the value against the condition and
	// returns the outcome together with its diagnostic tree.
	// A false Matched is the designed outcome of a failing
	// assertion, not an error; the error return is reserved
	// for malformed usage, such as an element index past the
	// end of the evaluated slice.
	Evaluate(value T) (Evaluation, error)

	// Description returns the static label of the condition.
	Description() string
}

// leaf is the plainest condition: a predicate with a label.
type leaf[T any] struct {
	label     string
	predicate func(T) bool
}

// New creates a leaf condition from a label and a predicate.
// The predicate must be pure: composite conditions invoke every
// child exactly once per evaluation, with no short-circuiting.
func New[T any](label string, predicate func(T) bool) Condition[T] {
	return leaf[T]{label: label, predicate: predicate}
}

func (c leaf[T]) Evaluate(value T) (Evaluation, error) {
	matched := c.predicate(value)
	return Evaluation{
		Matched: matched,
		Node: Node{
			Label:  c.label,
			Status: statusOf(matched),
		},
	}, nil
}

func (c leaf[T]) Description() string {
	return c.label
}

// statusOf maps a match outcome to its node status.
func statusOf(matched bool) string {
	if matched {
		return StatusPassed
	}
	return StatusFailed
}

// mustLabel validates a group label at construction time.
// Condition trees are built once and reused, so a malformed
// label is a programmer error and panics immediately rather
// than surfacing on a later evaluation.
func mustLabel(label string) {
	if strings.TrimSpace(label) == "" {
		panic("condition: group label must not be empty")
	}
}
