package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEndPoint_Getters tests if the getters of the EndPoint work correctly.
func TestEndPoint_Getters(t *testing.T) {
	endPoint := Lower(3, BoundTypeClosed)
	require.Equal(t, 3, endPoint.Value())
	require.Equal(t, BoundTypeClosed, endPoint.BoundType())
	require.Equal(t, SideLower, endPoint.Side())

	endPoint = Upper(5, BoundTypeOpen)
	require.Equal(t, 5, endPoint.Value())
	require.Equal(t, BoundTypeOpen, endPoint.BoundType())
	require.Equal(t, SideUpper, endPoint.Side())
}

// TestEndPoint_Contains tests if the containment rules of the four combinations of BoundType and Side work correctly.
func TestEndPoint_Contains(t *testing.T) {
	closedLower := Lower(3, BoundTypeClosed)
	require.True(t, closedLower.Contains(3))
	require.True(t, closedLower.Contains(4))
	require.False(t, closedLower.Contains(2))

	openLower := Lower(3, BoundTypeOpen)
	require.False(t, openLower.Contains(3))
	require.True(t, openLower.Contains(4))
	require.False(t, openLower.Contains(2))

	closedUpper := Upper(3, BoundTypeClosed)
	require.True(t, closedUpper.Contains(3))
	require.False(t, closedUpper.Contains(4))
	require.True(t, closedUpper.Contains(2))

	openUpper := Upper(3, BoundTypeOpen)
	require.False(t, openUpper.Contains(3))
	require.False(t, openUpper.Contains(4))
	require.True(t, openUpper.Contains(2))
}

// TestEndPoint_Compare tests if EndPoints order primarily by value and break ties between BoundTypes according to
// their Side.
func TestEndPoint_Compare(t *testing.T) {
	require.Equal(t, -1, Lower(3, BoundTypeClosed).Compare(Lower(5, BoundTypeClosed)))
	require.Equal(t, 1, Lower(5, BoundTypeClosed).Compare(Lower(3, BoundTypeClosed)))
	require.Equal(t, 0, Lower(3, BoundTypeOpen).Compare(Lower(3, BoundTypeOpen)))

	// at equal values the closed lower EndPoint admits its value first
	require.Equal(t, -1, Lower(5, BoundTypeClosed).Compare(Lower(5, BoundTypeOpen)))
	require.Equal(t, 1, Lower(5, BoundTypeOpen).Compare(Lower(5, BoundTypeClosed)))

	// at equal values the open upper EndPoint stops admitting values first
	require.Equal(t, -1, Upper(5, BoundTypeOpen).Compare(Upper(5, BoundTypeClosed)))
	require.Equal(t, 1, Upper(5, BoundTypeClosed).Compare(Upper(5, BoundTypeOpen)))

	require.Panics(t, func() {
		Lower(3, BoundTypeClosed).Compare(Upper(3, BoundTypeClosed))
	})
}

// TestEndPoint_Includes tests if the permissiveness order of EndPoints works correctly.
func TestEndPoint_Includes(t *testing.T) {
	require.True(t, Lower(3, BoundTypeClosed).Includes(Lower(3, BoundTypeOpen)))
	require.False(t, Lower(3, BoundTypeOpen).Includes(Lower(3, BoundTypeClosed)))
	require.True(t, Lower(3, BoundTypeOpen).Includes(Lower(5, BoundTypeClosed)))

	require.True(t, Upper(5, BoundTypeClosed).Includes(Upper(5, BoundTypeOpen)))
	require.False(t, Upper(5, BoundTypeOpen).Includes(Upper(5, BoundTypeClosed)))
	require.True(t, Upper(5, BoundTypeOpen).Includes(Upper(3, BoundTypeClosed)))
}

// TestEndPoint_IntersectionUnion tests if combining EndPoints yields the tighter and the looser one, respectively.
func TestEndPoint_IntersectionUnion(t *testing.T) {
	closedLower := Lower(3, BoundTypeClosed)
	openLower := Lower(3, BoundTypeOpen)
	require.Equal(t, openLower, closedLower.Intersection(openLower))
	require.Equal(t, closedLower, closedLower.Union(openLower))

	closedUpper := Upper(5, BoundTypeClosed)
	openUpper := Upper(5, BoundTypeOpen)
	require.Equal(t, openUpper, closedUpper.Intersection(openUpper))
	require.Equal(t, closedUpper, closedUpper.Union(openUpper))

	require.Equal(t, Lower(5, BoundTypeOpen), Lower(3, BoundTypeOpen).Intersection(Lower(5, BoundTypeOpen)))
	require.Equal(t, Upper(3, BoundTypeOpen), Upper(3, BoundTypeOpen).Intersection(Upper(5, BoundTypeOpen)))
}

// TestEndPoint_Flip tests if flipping an EndPoint complements its BoundType, moves it to the opposite Side and keeps
// its value.
func TestEndPoint_Flip(t *testing.T) {
	flipped := Upper(3, BoundTypeOpen).Flip()
	require.Equal(t, 3, flipped.Value())
	require.Equal(t, BoundTypeClosed, flipped.BoundType())
	require.Equal(t, SideLower, flipped.Side())

	require.Equal(t, Lower(3, BoundTypeClosed), Lower(3, BoundTypeClosed).Flip().Flip())
}

// TestEndPoint_Dilate tests if dilation moves EndPoints outwards for positive and inwards for negative deltas.
func TestEndPoint_Dilate(t *testing.T) {
	require.Equal(t, Lower(1, BoundTypeClosed), Lower(3, BoundTypeClosed).Dilate(2))
	require.Equal(t, Upper(7, BoundTypeOpen), Upper(5, BoundTypeOpen).Dilate(2))
	require.Equal(t, Lower(4, BoundTypeClosed), Lower(3, BoundTypeClosed).Dilate(-1))
	require.Equal(t, Upper(4, BoundTypeOpen), Upper(5, BoundTypeOpen).Dilate(-1))
}

// TestEndPoint_ClosureInterior tests if forcing the BoundType of an EndPoint keeps its other properties.
func TestEndPoint_ClosureInterior(t *testing.T) {
	require.Equal(t, Lower(3, BoundTypeClosed), Lower(3, BoundTypeOpen).Closure())
	require.Equal(t, Upper(5, BoundTypeOpen), Upper(5, BoundTypeClosed).Interior())
	require.Equal(t, Lower(3, BoundTypeClosed), Lower(3, BoundTypeClosed).Closure())
}

// TestEndPoint_Hull tests if EndPoints only move outwards when they are extended to cover additional values.
func TestEndPoint_Hull(t *testing.T) {
	require.Equal(t, Lower(1, BoundTypeClosed), Lower(3, BoundTypeClosed).Hull(1))
	require.Equal(t, Lower(3, BoundTypeClosed), Lower(3, BoundTypeClosed).Hull(5))
	require.Equal(t, Upper(7, BoundTypeOpen), Upper(5, BoundTypeOpen).Hull(7))
	require.Equal(t, Upper(5, BoundTypeOpen), Upper(5, BoundTypeOpen).Hull(3))
}

// TestEndPoint_To tests if the fluent construction of Intervals works correctly.
func TestEndPoint_To(t *testing.T) {
	interval, err := Lower(3, BoundTypeClosed).To(Upper(5, BoundTypeOpen))
	require.NoError(t, err)
	require.Equal(t, "[3 .. 5)", interval.String())

	_, err = Lower(3, BoundTypeOpen).To(Upper(3, BoundTypeClosed))
	require.ErrorIs(t, err, ErrEmptyInterval)

	require.Panics(t, func() {
		_, _ = Upper(5, BoundTypeOpen).To(Upper(7, BoundTypeOpen))
	})
}

// TestEndPoint_String tests if the human-readable version of EndPoints contains all of their properties.
func TestEndPoint_String(t *testing.T) {
	humanReadable := Lower(3, BoundTypeClosed).String()
	require.Contains(t, humanReadable, "EndPoint")
	require.Contains(t, humanReadable, "value: 3")
	require.Contains(t, humanReadable, "boundType: BoundTypeClosed")
	require.Contains(t, humanReadable, "side: SideLower")
}
