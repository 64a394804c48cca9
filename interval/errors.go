package interval

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyInterval is returned when the boundaries of an Interval do not admit any values.
	ErrEmptyInterval = errors.New("interval is empty")

	// ErrNaN is returned when a floating point boundary value is NaN and can therefore not be ordered.
	ErrNaN = errors.New("value is NaN")
)
