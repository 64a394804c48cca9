package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/interval.go/constraints"
	"github.com/iotaledger/interval.go/lo"
	"github.com/iotaledger/interval.go/stringify"
)

// Interval defines the boundaries around a contiguous span of values (i.e. "numbers from 1 to 100 inclusive").
//
// Each boundary consists of a value and a BoundType that declares whether the boundary value itself belongs to the
// Interval ("closed") or not ("open"). With two BoundTypes on each Side this yields four basic types of Intervals:
//
//	Notation    Definition          Factory
//	(a .. b)    {x | a < x < b}     Open
//	[a .. b]    {x | a <= x <= b}   Closed
//	(a .. b]    {x | a < x <= b}    OpenClosed
//	[a .. b)    {x | a <= x < b}    ClosedOpen
//
// An Interval is never empty: each of its EndPoints admits the boundary value of the other one, which means that the
// boundary values may only coincide if both EndPoints are closed. Intervals are immutable values (every operation
// derives a new Interval) and can therefore be shared freely between goroutines.
type Interval[T constraints.Numeric] struct {
	lower EndPoint[T]
	upper EndPoint[T]
}

// New creates an Interval from the given EndPoints. It returns an ErrEmptyInterval if the EndPoints do not admit any
// values (i.e. [3 .. 1] or [3 .. 3)) and panics if the EndPoints do not address a lower and an upper Side.
func New[T constraints.Numeric](lowerEndPoint, upperEndPoint EndPoint[T]) (Interval[T], error) {
	if lowerEndPoint.side != SideLower || upperEndPoint.side != SideUpper {
		panic("New needs a lower and an upper EndPoint - create them with Lower and Upper")
	}

	if !lowerEndPoint.Contains(upperEndPoint.value) || !upperEndPoint.Contains(lowerEndPoint.value) {
		return Interval[T]{}, errors.Wrapf(ErrEmptyInterval, "%s does not admit any values", notation(lowerEndPoint, upperEndPoint))
	}

	return Interval[T]{
		lower: lowerEndPoint,
		upper: upperEndPoint,
	}, nil
}

// Closed returns an Interval that contains all values greater than or equal to lower and less than or equal to upper.
func Closed[T constraints.Numeric](lower, upper T) (Interval[T], error) {
	return New(Lower(lower, BoundTypeClosed), Upper(upper, BoundTypeClosed))
}

// Open returns an Interval that contains all values strictly greater than lower and strictly less than upper.
func Open[T constraints.Numeric](lower, upper T) (Interval[T], error) {
	return New(Lower(lower, BoundTypeOpen), Upper(upper, BoundTypeOpen))
}

// ClosedOpen returns an Interval that contains all values greater than or equal to lower and strictly less than
// upper.
func ClosedOpen[T constraints.Numeric](lower, upper T) (Interval[T], error) {
	return New(Lower(lower, BoundTypeClosed), Upper(upper, BoundTypeOpen))
}

// OpenClosed returns an Interval that contains all values strictly greater than lower and less than or equal to
// upper.
func OpenClosed[T constraints.Numeric](lower, upper T) (Interval[T], error) {
	return New(Lower(lower, BoundTypeOpen), Upper(upper, BoundTypeClosed))
}

// Between returns the closed Interval that reaches from the smaller to the larger of the two given values, swapping
// them if necessary.
func Between[T constraints.Numeric](value1, value2 T) (Interval[T], error) {
	if value2 < value1 {
		return Closed(value2, value1)
	}

	return Closed(value1, value2)
}

// SpanMany returns the smallest Interval that contains all values of all given Intervals. The second return value is
// false if no Intervals were given.
func SpanMany[T constraints.Numeric](intervals ...Interval[T]) (Interval[T], bool) {
	if len(intervals) == 0 {
		return Interval[T]{}, false
	}

	return lo.Reduce(intervals[1:], Interval[T].Span, intervals[0]), true
}

// HullMany returns the smallest closed Interval that contains all given values. The second return value is false if
// no values were given (or if NaN boundary values prevent the construction).
func HullMany[T constraints.Numeric](values ...T) (Interval[T], bool) {
	if len(values) == 0 {
		return Interval[T]{}, false
	}

	hull, err := Between(lo.Min(values...), lo.Max(values...))

	return hull, err == nil
}

// LowerEndPoint returns the EndPoint that bounds the Interval from below.
func (i Interval[T]) LowerEndPoint() EndPoint[T] {
	return i.lower
}

// UpperEndPoint returns the EndPoint that bounds the Interval from above.
func (i Interval[T]) UpperEndPoint() EndPoint[T] {
	return i.upper
}

// Inf returns the lower boundary value of the Interval, regardless of its BoundType.
func (i Interval[T]) Inf() T {
	return i.lower.value
}

// Sup returns the upper boundary value of the Interval, regardless of its BoundType.
func (i Interval[T]) Sup() T {
	return i.upper.value
}

// Measure returns the length of the Interval (the distance between its boundary values).
func (i Interval[T]) Measure() T {
	return i.upper.value - i.lower.value
}

// Contains returns true if the given value is within the bounds of the Interval.
func (i Interval[T]) Contains(value T) bool {
	return i.lower.Contains(value) && i.upper.Contains(value)
}

// Includes returns true if the Interval contains every value of the other Interval.
func (i Interval[T]) Includes(other Interval[T]) bool {
	return i.lower.Includes(other.lower) && i.upper.Includes(other.upper)
}

// Overlaps returns true if the two Intervals share at least one value.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	_, exists := i.Intersection(other)

	return exists
}

// Intersection returns the Interval that contains exactly the values contained in both Intervals. The second return
// value is false if the Intervals do not share any values.
func (i Interval[T]) Intersection(other Interval[T]) (Interval[T], bool) {
	intersection, err := New(i.lower.Intersection(other.lower), i.upper.Intersection(other.upper))
	if err != nil {
		return Interval[T]{}, false
	}

	return intersection, true
}

// Span returns the smallest Interval that contains all values of both Intervals (including the values between them
// if they do not overlap).
func (i Interval[T]) Span(other Interval[T]) Interval[T] {
	return Interval[T]{
		lower: i.lower.Union(other.lower),
		upper: i.upper.Union(other.upper),
	}
}

// Union returns the combination of the two Intervals: the Interval spanning both plus the optional Gap between them
// that is not part of the union itself. IntervalUnion.Intervals splits the result back into its disjoint parts.
func (i Interval[T]) Union(other Interval[T]) IntervalUnion[T] {
	gap, hasGap := i.Gap(other)

	return IntervalUnion[T]{
		span:   i.Span(other),
		gap:    gap,
		hasGap: hasGap,
	}
}

// Gap returns the Interval that lies strictly between the two Intervals, with its EndPoints derived by flipping the
// facing EndPoints of the inputs. The second return value is false if the Intervals overlap or touch so that no
// values lie between them.
func (i Interval[T]) Gap(other Interval[T]) (Interval[T], bool) {
	if gap, err := New(i.upper.Flip(), other.lower.Flip()); err == nil {
		return gap, true
	}
	if gap, err := New(other.upper.Flip(), i.lower.Flip()); err == nil {
		return gap, true
	}

	return Interval[T]{}, false
}

// Difference returns the up to two Intervals that contain the values of the Interval that are not covered by the
// other Interval, in ascending order.
func (i Interval[T]) Difference(other Interval[T]) (remainders []Interval[T]) {
	if lowerRemainder, err := New(i.lower, i.upper.Intersection(other.lower.Flip())); err == nil {
		remainders = append(remainders, lowerRemainder)
	}
	if upperRemainder, err := New(i.lower.Intersection(other.upper.Flip()), i.upper); err == nil {
		remainders = append(remainders, upperRemainder)
	}

	return remainders
}

// Hull returns the smallest Interval that also admits the given value, keeping the BoundTypes of its EndPoints (a
// value that lands exactly on an open boundary therefore stays excluded).
func (i Interval[T]) Hull(value T) Interval[T] {
	return Interval[T]{
		lower: i.lower.Hull(value),
		upper: i.upper.Hull(value),
	}
}

// Dilate grows the Interval by the given delta on both sides (or shrinks it if the delta is negative). It returns an
// ErrEmptyInterval if a negative delta makes the EndPoints cross each other.
func (i Interval[T]) Dilate(delta T) (Interval[T], error) {
	return New(i.lower.Dilate(delta), i.upper.Dilate(delta))
}

// String returns a human-readable version of the Interval in mathematical notation (i.e. "[3 .. 5)").
func (i Interval[T]) String() string {
	return notation(i.lower, i.upper)
}

// notation returns the mathematical notation of the Interval between the given EndPoints.
func notation[T constraints.Numeric](lowerEndPoint, upperEndPoint EndPoint[T]) (humanReadable string) {
	switch lowerEndPoint.boundType {
	case BoundTypeOpen:
		humanReadable = "(" + stringify.Interface(lowerEndPoint.value)
	case BoundTypeClosed:
		humanReadable = "[" + stringify.Interface(lowerEndPoint.value)
	}

	switch upperEndPoint.boundType {
	case BoundTypeOpen:
		humanReadable += " .. " + stringify.Interface(upperEndPoint.value) + ")"
	case BoundTypeClosed:
		humanReadable += " .. " + stringify.Interface(upperEndPoint.value) + "]"
	}

	return humanReadable
}

// code contract (make sure the type implements all required methods).
var _ fmt.Stringer = Interval[int]{}
