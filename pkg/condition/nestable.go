package condition

// nestable projects a parent value into a child value before
// evaluating a group of child-typed conditions.
type nestable[T, U any] struct {
	group   allOf[U]
	project func(T) U
}

// Nestable creates a condition over T that first projects the
// value into a U (typically a field of T) and then evaluates the
// given conditions against the projection, under one labelled
// node. Because the nested conditions may themselves be
// nestable, this is what allows an address sub-structure to
// render as an indented sub-tree under a customer's diagnostic
// output:
//
//	condition.Nestable("address",
//		func(c Customer) Address { return c.Address },
//		line1("12 Chestnut close"),
//		town("London"),
//	)
//
// The projection must be a pure, total function. Optional fields
// are not special-cased here; callers compose an explicit
// presence condition instead.
func Nestable[T, U any](
	label string,
	project func(T) U,
	conditions ...Condition[U],
) Condition[T] {
	mustLabel(label)

	group := allOf[U]{
		label:      label,
		conditions: make([]Condition[U], len(conditions)),
	}
	copy(group.conditions, conditions)

	return nestable[T, U]{group: group, project: project}
}

func (c nestable[T, U]) Evaluate(value T) (Evaluation, error) {
	return c.group.Evaluate(c.project(value))
}

func (c nestable[T, U]) Description() string {
	return c.group.label
}
