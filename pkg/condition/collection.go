package condition

import "fmt"

// contains is an existential condition over a slice.
type contains[V any] struct {
	element Condition[V]
}

// Contains lifts a condition on an element type into a condition
// over slices of that type, matching iff at least one element
// satisfies it. The diagnostic shows the sought condition as the
// single rendered requirement rather than every element's
// status, since the search is existential. An empty slice never
// matches.
func Contains[V any](element Condition[V]) Condition[[]V] {
	return contains[V]{element: element}
}

func (c contains[V]) Evaluate(values []V) (Evaluation, error) {
	matched := false

	for _, v := range values {
		ev, err := c.element.Evaluate(v)
		if err != nil {
			return Evaluation{}, fmt.Errorf("contains: %w", err)
		}
		if ev.Matched {
			matched = true
			break
		}
	}

	return Evaluation{
		Matched: matched,
		Node: Node{
			Label:  "contains",
			Status: statusOf(matched),
			Children: []Node{{
				Label:  c.element.Description(),
				Status: statusOf(matched),
			}},
		},
	}, nil
}

func (c contains[V]) Description() string {
	return "contains"
}

// elementAt projects a slice to the element at a fixed index.
type elementAt[V any] struct {
	group allOf[V]
	index int
}

// ElementAt creates a condition over slices that evaluates the
// given conditions against the element at index, under a node
// labelled "element at <index>". A negative index panics at
// construction time. An index past the end of the evaluated
// slice is a usage error, not a non-match: Evaluate returns a
// non-nil error so callers can tell a malformed assertion apart
// from a failing one.
func ElementAt[V any](
	index int,
	conditions ...Condition[V],
) Condition[[]V] {
	if index < 0 {
		panic(fmt.Sprintf(
			"condition: element index must be non-negative, got %d",
			index,
		))
	}

	group := allOf[V]{
		label:      fmt.Sprintf("element at %d", index),
		conditions: make([]Condition[V], len(conditions)),
	}
	copy(group.conditions, conditions)

	return elementAt[V]{group: group, index: index}
}

func (c elementAt[V]) Evaluate(values []V) (Evaluation, error) {
	if c.index >= len(values) {
		return Evaluation{}, fmt.Errorf(
			"element at %d: index out of range for %d element(s)",
			c.index, len(values),
		)
	}

	return c.group.Evaluate(values[c.index])
}

func (c elementAt[V]) Description() string {
	return c.group.label
}
