package stringify

import "strconv"

// Float64 returns the shortest human-readable version of the given float64 value.
func Float64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Float32 returns the shortest human-readable version of the given float32 value.
func Float32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
