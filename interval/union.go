package interval

import (
	"fmt"

	"github.com/iotaledger/interval.go/constraints"
	"github.com/iotaledger/interval.go/lo"
	"github.com/iotaledger/interval.go/stringify"
)

// IntervalUnion is the result of combining two Intervals: the Interval spanning both plus the optional Gap between
// them that does not belong to the union itself.
type IntervalUnion[T constraints.Numeric] struct {
	span   Interval[T]
	gap    Interval[T]
	hasGap bool
}

// Span returns the smallest Interval that contains both combined Intervals.
func (i IntervalUnion[T]) Span() Interval[T] {
	return i.span
}

// Gap returns the Interval between the two combined Intervals whose values are not part of the union. The second
// return value is false if the combined Intervals overlap or touch.
func (i IntervalUnion[T]) Gap() (Interval[T], bool) {
	return i.gap, i.hasGap
}

// Intervals returns the disjoint Intervals that make up the union in ascending order: the two combined Intervals if
// a Gap separates them and the spanning Interval alone otherwise.
func (i IntervalUnion[T]) Intervals() []Interval[T] {
	if !i.hasGap {
		return []Interval[T]{i.span}
	}

	return []Interval[T]{
		{lower: i.span.lower, upper: i.gap.lower.Flip()},
		{lower: i.gap.upper.Flip(), upper: i.span.upper},
	}
}

// Contains returns true if the given value is within the bounds of the union (inside the Span but not inside the
// Gap).
func (i IntervalUnion[T]) Contains(value T) bool {
	return i.span.Contains(value) && !(i.hasGap && i.gap.Contains(value))
}

// String returns a human-readable version of the IntervalUnion.
func (i IntervalUnion[T]) String() string {
	return stringify.Struct("IntervalUnion",
		stringify.NewStructField("span", i.span),
		stringify.NewStructField("gap", lo.Cond[interface{}](i.hasGap, i.gap, "<none>")),
	)
}

// code contract (make sure the type implements all required methods).
var _ fmt.Stringer = IntervalUnion[int]{}
