package condition

// verbose is a leaf condition that renders the actual value on
// failure.
type verbose[T any] struct {
	label     string
	predicate func(T) bool
	actual    func(T) string
}

// Verbose creates a condition that, when it fails, records the
// actual value in the node's Detail field using the given
// renderer. On success Detail stays empty, so a passing node
// shows only its label.
func Verbose[T any](
	predicate func(T) bool,
	label string,
	actual func(T) string,
) Condition[T] {
	return verbose[T]{
		label:     label,
		predicate: predicate,
		actual:    actual,
	}
}

func (c verbose[T]) Evaluate(value T) (Evaluation, error) {
	matched := c.predicate(value)

	node := Node{
		Label:  c.label,
		Status: statusOf(matched),
	}
	if !matched {
		node.Detail = c.actual(value)
	}

	return Evaluation{Matched: matched, Node: node}, nil
}

func (c verbose[T]) Description() string {
	return c.label
}
