package lo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Cond(t *testing.T) {
	require.Equal(t, 1, Cond(true, 1, 2), "should return the first value")
	require.Equal(t, 2, Cond(false, 1, 2), "should return the second value")
}

func Test_Map(t *testing.T) {
	sourceSlice := []int{1, 2, 3}

	targetSlice := Map(sourceSlice, func(item int) int {
		return item * 2
	})

	require.Equal(t, []int{2, 4, 6}, targetSlice, "should map the slice")
}

func Test_Reduce(t *testing.T) {
	collection := []int{1, 2, 3}

	result := Reduce(collection, func(accumulated int, item int) int {
		return accumulated + item
	}, 0)

	require.Equal(t, 6, result, "should reduce the slice")
}

func Test_Filter(t *testing.T) {
	collection := []int{1, 2, 3}

	result := Filter(collection, func(item int) bool {
		return item%2 == 0
	})

	require.Equal(t, []int{2}, result, "should filter the slice")
}

func Test_MinMax(t *testing.T) {
	require.Equal(t, 9, Max(3, 9, 2, 5), "should return the maximum")
	require.Equal(t, 2, Min(3, 9, 2, 5), "should return the minimum")
	require.Equal(t, 0, Max[int](), "should return the zero value for an empty collection")
}

func Test_Comparator(t *testing.T) {
	require.Equal(t, -1, Comparator(1, 2), "should return -1 if the first value is smaller")
	require.Equal(t, 1, Comparator(2, 1), "should return 1 if the first value is larger")
	require.Equal(t, 0, Comparator(1, 1), "should return 0 if the values are equal")
}
