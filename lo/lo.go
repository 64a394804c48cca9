package lo

import (
	"github.com/iotaledger/interval.go/constraints"
)

// Cond is a conditional statement that returns the trueValue if the condition is true and the falseValue otherwise.
func Cond[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}

	return falseValue
}

// Map iterates over elements of collection, applies the mapper function to each element
// and returns an array of modified TargetType elements.
func Map[SourceType any, TargetType any](source []SourceType, mapper func(SourceType) TargetType) (target []TargetType) {
	target = make([]TargetType, len(source))
	for i, value := range source {
		target[i] = mapper(value)
	}

	return target
}

// Reduce reduces collection to a value which is the accumulated result of running each element in collection
// through accumulator, where each successive invocation is supplied the return value of the previous.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	for _, item := range collection {
		initial = accumulator(initial, item)
	}

	return initial
}

// Filter iterates over elements of collection, returning an array of all elements predicate returns truthy for.
func Filter[V any](collection []V, predicate func(V) bool) []V {
	var result []V

	for _, item := range collection {
		if predicate(item) {
			result = append(result, item)
		}
	}

	return result
}

// PanicOnErr panics if the given error is not nil and returns the result otherwise.
func PanicOnErr[T any](result T, err error) T {
	if err != nil {
		panic(err)
	}

	return result
}

// Max returns the maximum value of the collection, or the zero value if the collection is empty.
func Max[T constraints.Ordered](collection ...T) T {
	var maxElem T
	if len(collection) == 0 {
		return maxElem
	}

	maxElem = collection[0]

	return Reduce(collection, func(max, value T) T {
		if Comparator(value, max) > 0 {
			return value
		}

		return max
	}, maxElem)
}

// Min returns the minimum value of the collection, or the zero value if the collection is empty.
func Min[T constraints.Ordered](collection ...T) T {
	var minElem T
	if len(collection) == 0 {
		return minElem
	}

	minElem = collection[0]

	return Reduce(collection, func(min, value T) T {
		if Comparator(value, min) < 0 {
			return value
		}

		return min
	}, minElem)
}
