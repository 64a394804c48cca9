package intervalmap

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrOverlappingInterval is returned when a stored Interval shares values with the Interval that is being added.
	ErrOverlappingInterval = errors.New("interval overlaps an existing interval")
)
