package interval

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/interval.go/constraints"
)

// NotNaN returns the given floating point value if it is ordered and an ErrNaN if it is NaN.
func NotNaN[T constraints.Float](value T) (T, error) {
	if value != value {
		return 0, ErrNaN
	}

	return value, nil
}

// NewFloat creates an Interval from the given floating point EndPoints. It returns an ErrNaN if one of the boundary
// values is NaN (checked before everything else) and an ErrEmptyInterval if the EndPoints do not admit any values.
func NewFloat[T constraints.Float](lowerEndPoint, upperEndPoint EndPoint[T]) (Interval[T], error) {
	if _, err := NotNaN(lowerEndPoint.value); err != nil {
		return Interval[T]{}, errors.Wrap(err, "invalid lower EndPoint")
	}
	if _, err := NotNaN(upperEndPoint.value); err != nil {
		return Interval[T]{}, errors.Wrap(err, "invalid upper EndPoint")
	}

	return New(lowerEndPoint, upperEndPoint)
}

// BetweenFloats returns the closed Interval that reaches from the smaller to the larger of the two given floating
// point values, swapping them if necessary. It returns an ErrNaN if one of the values is NaN.
func BetweenFloats[T constraints.Float](value1, value2 T) (Interval[T], error) {
	if _, err := NotNaN(value1); err != nil {
		return Interval[T]{}, err
	}
	if _, err := NotNaN(value2); err != nil {
		return Interval[T]{}, err
	}

	return Between(value1, value2)
}

// Center returns the value exactly in the middle between the boundary values of the Interval.
func Center[T constraints.Float](interval Interval[T]) T {
	return (interval.lower.value + interval.upper.value) / 2
}

// IoU returns the intersection over union of the two Intervals: the ratio between the length of their shared part and
// the length of their combined span. It is 0 if the Intervals are disjoint and 1 if they are identical.
func IoU[T constraints.Float](interval, other Interval[T]) T {
	intersection, exists := interval.Intersection(other)
	if !exists {
		return 0
	}

	return intersection.Measure() / interval.Span(other).Measure()
}

// Closure returns the topological closure of the Interval: the same boundary values with both BoundTypes forced to
// BoundTypeClosed.
func Closure[T constraints.Float](interval Interval[T]) Interval[T] {
	return Interval[T]{
		lower: interval.lower.Closure(),
		upper: interval.upper.Closure(),
	}
}

// Interior returns the topological interior of the Interval: the same boundary values with both BoundTypes forced to
// BoundTypeOpen. The second return value is false if the interior is empty (i.e. for a single point Interval).
func Interior[T constraints.Float](interval Interval[T]) (Interval[T], bool) {
	interior, err := New(interval.lower.Interior(), interval.upper.Interior())

	return interior, err == nil
}

// StepUniform returns sample values that divide the Interval into the given amount of equally sized steps. The first
// and the last sample fall on the boundary values and are skipped if the corresponding bound is open. It panics if
// the amount of steps is not positive.
func StepUniform[T constraints.Float](interval Interval[T], steps int) (values []T) {
	if steps <= 0 {
		panic("steps needs to be positive")
	}

	stepSize := interval.Measure() / T(steps)
	for k := 0; k <= steps; k++ {
		switch {
		case k == 0:
			if interval.lower.boundType == BoundTypeClosed {
				values = append(values, interval.lower.value)
			}
		case k == steps:
			if interval.upper.boundType == BoundTypeClosed {
				values = append(values, interval.upper.value)
			}
		default:
			values = append(values, interval.lower.value+T(k)*stepSize)
		}
	}

	return values
}
