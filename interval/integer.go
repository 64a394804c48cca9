package interval

import (
	"github.com/iotaledger/interval.go/constraints"
)

// MinValue returns the smallest integer value admitted by the given lower EndPoint: the boundary value itself if the
// EndPoint is closed and the next larger integer if it is open. It panics if the EndPoint is not a lower EndPoint.
func MinValue[T constraints.Integer](lowerEndPoint EndPoint[T]) T {
	if lowerEndPoint.side != SideLower {
		panic("MinValue needs to be called with a lower EndPoint - check Side() first")
	}

	if lowerEndPoint.boundType == BoundTypeOpen {
		return lowerEndPoint.value + 1
	}

	return lowerEndPoint.value
}

// MaxValue returns the largest integer value admitted by the given upper EndPoint: the boundary value itself if the
// EndPoint is closed and the next smaller integer if it is open. It panics if the EndPoint is not an upper EndPoint.
func MaxValue[T constraints.Integer](upperEndPoint EndPoint[T]) T {
	if upperEndPoint.side != SideUpper {
		panic("MaxValue needs to be called with an upper EndPoint - check Side() first")
	}

	if upperEndPoint.boundType == BoundTypeOpen {
		return upperEndPoint.value - 1
	}

	return upperEndPoint.value
}

// Min returns the smallest integer value contained in the given Interval. The second return value is false if the
// Interval does not contain any integer values (i.e. the open Interval (3 .. 4)).
func Min[T constraints.Integer](interval Interval[T]) (T, bool) {
	minValue := MinValue(interval.lower)
	if !interval.Contains(minValue) {
		return 0, false
	}

	return minValue, true
}

// Max returns the largest integer value contained in the given Interval. The second return value is false if the
// Interval does not contain any integer values (i.e. the open Interval (3 .. 4)).
func Max[T constraints.Integer](interval Interval[T]) (T, bool) {
	maxValue := MaxValue(interval.upper)
	if !interval.Contains(maxValue) {
		return 0, false
	}

	return maxValue, true
}

// ForEachValue iterates through the integer values contained in the given Interval in ascending order, advancing by
// the given step. It aborts the iteration if the consumer returns false and panics if the step is not positive.
func ForEachValue[T constraints.Integer](interval Interval[T], step T, consumer func(value T) bool) {
	if step <= 0 {
		panic("step needs to be positive")
	}

	value, ok := Min(interval)
	if !ok {
		return
	}
	maxValue, _ := Max(interval)

	for {
		if !consumer(value) {
			return
		}

		nextValue := value + step
		if nextValue < value || nextValue > maxValue {
			return
		}

		value = nextValue
	}
}

// Values returns the integer values contained in the given Interval in ascending order.
func Values[T constraints.Integer](interval Interval[T]) (values []T) {
	ForEachValue(interval, 1, func(value T) bool {
		values = append(values, value)

		return true
	})

	return values
}
