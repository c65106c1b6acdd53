package condition

import "fmt"

// allOf is an ordered conjunction of same-typed conditions.
type allOf[T any] struct {
	label      string
	conditions []Condition[T]
}

// AllOf combines a fixed, ordered set of conditions into one
// that matches iff all of them match. Every child is evaluated
// on every call, with no short-circuiting, so the diagnostic
// tree always shows the status of every child in construction
// order. Zero conditions is permitted and trivially matches.
//
// An empty label panics: condition trees are built once and
// reused, so malformed combinator arguments are reported at
// construction time.
func AllOf[T any](
	label string,
	conditions ...Condition[T],
) Condition[T] {
	mustLabel(label)

	group := allOf[T]{
		label:      label,
		conditions: make([]Condition[T], len(conditions)),
	}
	copy(group.conditions, conditions)
	return group
}

// Group wraps conditions under one labelled node without
// changing the evaluated value. It is the no-projection form of
// Nestable, used to put a whole top-level group under a single
// named node:
//
//	condition.Group("customer", firstName("John"), lastName("Doe"))
func Group[T any](
	label string,
	conditions ...Condition[T],
) Condition[T] {
	return AllOf(label, conditions...)
}

func (c allOf[T]) Evaluate(value T) (Evaluation, error) {
	matched := true
	children := make([]Node, 0, len(c.conditions))

	for _, child := range c.conditions {
		ev, err := child.Evaluate(value)
		if err != nil {
			return Evaluation{}, fmt.Errorf(
				"%s: %w", c.label, err,
			)
		}

		matched = matched && ev.Matched
		children = append(children, ev.Node)
	}

	return Evaluation{
		Matched: matched,
		Node: Node{
			Label:    c.label,
			Status:   statusOf(matched),
			Children: children,
		},
	}, nil
}

func (c allOf[T]) Description() string {
	return c.label
}
