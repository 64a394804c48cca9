package interval

import (
	"fmt"

	"github.com/iotaledger/interval.go/constraints"
	"github.com/iotaledger/interval.go/lo"
	"github.com/iotaledger/interval.go/stringify"
)

// EndPoint is one of the two boundaries of an Interval. It combines a boundary value with the BoundType that declares
// whether the value itself is admitted and the Side of the Interval that it addresses.
type EndPoint[T constraints.Numeric] struct {
	value     T
	boundType BoundType
	side      Side
}

// NewEndPoint creates a new EndPoint from the given details.
func NewEndPoint[T constraints.Numeric](value T, boundType BoundType, side Side) EndPoint[T] {
	return EndPoint[T]{
		value:     value,
		boundType: boundType,
		side:      side,
	}
}

// Lower creates a new EndPoint that bounds an Interval from below.
func Lower[T constraints.Numeric](value T, boundType BoundType) EndPoint[T] {
	return NewEndPoint(value, boundType, SideLower)
}

// Upper creates a new EndPoint that bounds an Interval from above.
func Upper[T constraints.Numeric](value T, boundType BoundType) EndPoint[T] {
	return NewEndPoint(value, boundType, SideUpper)
}

// Value returns the boundary value of the EndPoint.
func (e EndPoint[T]) Value() T {
	return e.value
}

// BoundType returns the BoundType of the EndPoint.
func (e EndPoint[T]) BoundType() BoundType {
	return e.boundType
}

// Side returns the Side of the EndPoint.
func (e EndPoint[T]) Side() Side {
	return e.side
}

// Contains returns true if the given value lies on the inner side of the EndPoint.
func (e EndPoint[T]) Contains(value T) bool {
	if e.side == SideLower {
		return lo.Cond(e.boundType == BoundTypeClosed, value >= e.value, value > e.value)
	}

	return lo.Cond(e.boundType == BoundTypeClosed, value <= e.value, value < e.value)
}

// Compare returns 0 if the EndPoint admits the same values as the other EndPoint, -1 if it starts admitting values
// earlier and 1 if it starts admitting values later. At equal boundary values the BoundTypes break the tie: of two
// lower EndPoints the closed one sorts first, of two upper EndPoints the open one sorts first. It panics if the
// EndPoints address different Sides.
func (e EndPoint[T]) Compare(other EndPoint[T]) int {
	e.enforceSameSide(other)

	if valueOrder := lo.Comparator(e.value, other.value); valueOrder != 0 {
		return valueOrder
	}
	if e.boundType == other.boundType {
		return 0
	}

	if (e.boundType == BoundTypeClosed) == (e.side == SideLower) {
		return -1
	}

	return 1
}

// Includes returns true if the EndPoint admits every value that the other EndPoint admits. It panics if the EndPoints
// address different Sides.
func (e EndPoint[T]) Includes(other EndPoint[T]) bool {
	if e.side == SideLower {
		return e.Compare(other) <= 0
	}

	return e.Compare(other) >= 0
}

// Intersection returns the tighter of the two EndPoints which only admits values that the other one admits as well.
// It panics if the EndPoints address different Sides.
func (e EndPoint[T]) Intersection(other EndPoint[T]) EndPoint[T] {
	if e.Includes(other) {
		return other
	}

	return e
}

// Union returns the looser of the two EndPoints which admits every value that either of the two admits. It panics if
// the EndPoints address different Sides.
func (e EndPoint[T]) Union(other EndPoint[T]) EndPoint[T] {
	if e.Includes(other) {
		return e
	}

	return other
}

// Flip returns the EndPoint that bounds the values immediately past the EndPoint: it keeps the boundary value but
// addresses the opposite Side with the complementary BoundType.
func (e EndPoint[T]) Flip() EndPoint[T] {
	return EndPoint[T]{
		value:     e.value,
		boundType: e.boundType.Flip(),
		side:      e.side.Opposite(),
	}
}

// Dilate moves the EndPoint outwards by the given delta (or inwards if the delta is negative): a lower EndPoint moves
// down and an upper EndPoint moves up.
func (e EndPoint[T]) Dilate(delta T) EndPoint[T] {
	if e.side == SideLower {
		e.value -= delta
	} else {
		e.value += delta
	}

	return e
}

// Closure returns the EndPoint with its BoundType forced to BoundTypeClosed, keeping value and Side.
func (e EndPoint[T]) Closure() EndPoint[T] {
	e.boundType = BoundTypeClosed

	return e
}

// Interior returns the EndPoint with its BoundType forced to BoundTypeOpen, keeping value and Side.
func (e EndPoint[T]) Interior() EndPoint[T] {
	e.boundType = BoundTypeOpen

	return e
}

// Hull moves the EndPoint just far enough outwards to admit the given value, keeping its BoundType.
func (e EndPoint[T]) Hull(value T) EndPoint[T] {
	if e.side == SideLower {
		e.value = lo.Min(e.value, value)
	} else {
		e.value = lo.Max(e.value, value)
	}

	return e
}

// To creates an Interval that reaches from the EndPoint to the given upper EndPoint. It returns an ErrEmptyInterval
// if the resulting Interval would not admit any values and panics if the receiver is not a lower EndPoint.
func (e EndPoint[T]) To(upperEndPoint EndPoint[T]) (Interval[T], error) {
	if e.side != SideLower {
		panic("To needs to be called on a lower EndPoint - use Lower(value, boundType) to create one")
	}

	return New(e, upperEndPoint)
}

// String returns a human-readable version of the EndPoint.
func (e EndPoint[T]) String() string {
	return stringify.Struct("EndPoint",
		stringify.NewStructField("value", e.value),
		stringify.NewStructField("boundType", e.boundType),
		stringify.NewStructField("side", e.side),
	)
}

// enforceSameSide panics if the two EndPoints do not address the same Side of an Interval.
func (e EndPoint[T]) enforceSameSide(other EndPoint[T]) {
	if e.side != other.side {
		panic("EndPoints of different Sides have no defined order - check Side() before comparing EndPoints")
	}
}

// code contract (make sure the type implements all required methods).
var _ constraints.Comparable[EndPoint[int]] = EndPoint[int]{}

// code contract (make sure the type implements all required methods).
var _ fmt.Stringer = EndPoint[int]{}
