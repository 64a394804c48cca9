package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBoundTypeOpen tests the API of the BoundTypeOpen type.
func TestBoundTypeOpen(t *testing.T) {
	boundType := BoundTypeOpen
	require.Equal(t, "BoundTypeOpen", boundType.String())
	require.Equal(t, BoundTypeClosed, boundType.Flip())
}

// TestBoundTypeClosed tests the API of the BoundTypeClosed type.
func TestBoundTypeClosed(t *testing.T) {
	boundType := BoundTypeClosed
	require.Equal(t, "BoundTypeClosed", boundType.String())
	require.Equal(t, BoundTypeOpen, boundType.Flip())
}

// TestBoundTypeUnknown tests the behavior of BoundTypes that are outside of the known values.
func TestBoundTypeUnknown(t *testing.T) {
	boundType := BoundType(17)
	require.Equal(t, "BoundType(11)", boundType.String())
}
