package condition

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Equals creates a verbose condition that checks whether a
// projected field of the value equals the expected value.
// Equality is structural, via go-cmp, so composite value types
// compare by content rather than identity; cmp options may be
// supplied for types that need custom comparison.
//
// The label is "<description>: '<expected>'" and the failure
// detail is "but was: '<actual>'", so a failing node shows both
// sides without the caller printing the whole enclosing value.
//
// Every single-field equality condition should be one call to
// this factory:
//
//	func firstName(expected string) condition.Condition[Customer] {
//		return condition.Equals(
//			"first name", expected,
//			func(c Customer) string { return c.FirstName },
//		)
//	}
func Equals[T, K any](
	description string,
	expected K,
	project func(T) K,
	opts ...cmp.Option,
) Condition[T] {
	return Verbose(
		func(value T) bool {
			return cmp.Equal(expected, project(value), opts...)
		},
		fmt.Sprintf("%s: '%v'", description, expected),
		func(value T) string {
			return fmt.Sprintf("but was: '%v'", project(value))
		},
	)
}
