package interval

import (
	"fmt"
)

// BoundType indicates whether the boundary value of an EndPoint is contained in the Interval itself ("closed") or not
// ("open").
type BoundType uint8

const (
	// BoundTypeOpen indicates that the EndPoint value is not considered part of the Interval ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the EndPoint value is considered part of the Interval ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// Flip returns the complementary BoundType (open becomes closed and closed becomes open).
func (b BoundType) Flip() BoundType {
	if b == BoundTypeOpen {
		return BoundTypeClosed
	}

	return BoundTypeOpen
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
