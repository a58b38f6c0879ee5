package tg

import "math"

// Point is a planar coordinate pair.
type Point struct {
	X, Y float64
}

// String returns "x y", each coordinate in the shortest plain-decimal
// form that round-trips (never exponential).
func (p Point) String() string {
	return ftoa(p.X) + " " + ftoa(p.Y)
}

// feq is strict IEEE equality: NaN compares unequal to everything,
// including itself.
func feq(a, b float64) bool {
	return a == b
}

// eqZero reports whether x compares equal to zero under feq.
func eqZero(x float64) bool {
	return feq(x, 0)
}

func fmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Equal reports whether two points have identical coordinates under feq.
func (p Point) Equal(other Point) bool {
	return feq(p.X, other.X) && feq(p.Y, other.Y)
}

// Rect returns the degenerate (zero-area) rectangle covering p.
func (p Point) Rect() Rect {
	return Rect{Min: p, Max: p}
}

// distSq is the squared Euclidean distance between two points, used by
// callers that only need distance ordering (kNN seeding, nearest-point
// helpers) and want to avoid the sqrt.
func (p Point) distSq(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.distSq(other))
}

// ftoa formats a float as the shortest round-trippable plain decimal,
// never in exponential form. Point.String uses it; the WKT and GeoJSON
// writers format their coordinates on their own.
func ftoa(f float64) string {
	return trimFloat(f)
}
