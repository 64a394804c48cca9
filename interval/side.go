package interval

import (
	"fmt"
)

// Side addresses one of the two ends of an Interval and determines which containment and ordering rules an EndPoint
// follows.
type Side uint8

const (
	// SideLower addresses the lower end of an Interval.
	SideLower Side = iota

	// SideUpper addresses the upper end of an Interval.
	SideUpper
)

// SideNames contains a dictionary of the names of Sides.
var SideNames = [...]string{
	"SideLower",
	"SideUpper",
}

// Opposite returns the Side that addresses the other end of an Interval.
func (s Side) Opposite() Side {
	if s == SideLower {
		return SideUpper
	}

	return SideLower
}

// String returns a human-readable version of the Side.
func (s Side) String() string {
	if int(s) >= len(SideNames) {
		return fmt.Sprintf("Side(%X)", uint8(s))
	}

	return SideNames[s]
}
