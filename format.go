package tg

import "strconv"

// trimFloat formats f with the minimum number of digits that round-trips
// (plain decimal, no unnecessary trailing zeros).
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
