package tg

import "math"

// Segment is a directed pair of endpoints.
type Segment struct {
	A, B Point
}

// Rect returns the MBR of the segment's two endpoints.
func (s Segment) Rect() Rect {
	return rectOf(s.A, s.B)
}

// raycastResult classifies a point against a segment for the
// point-in-polygon raycast test.
type raycastResult int

const (
	rcOut raycastResult = iota
	rcIn
	rcOn
)

// collinear reports whether p1, p2, p3 lie on a common line, using the
// cross-product sign test with a one-ULP correction for the inevitable
// floating-point error of the two cross terms.
func collinear(p1, p2, p3 Point) bool {
	// Axis-aligned and coincidence shortcuts.
	if p1.X == p2.X && p2.X == p3.X {
		return true
	}
	if p1.Y == p2.Y && p2.Y == p3.Y {
		return true
	}
	if p1.Equal(p2) || p2.Equal(p3) || p1.Equal(p3) {
		return true
	}

	cx1 := p2.X - p1.X
	cy1 := p2.Y - p1.Y
	cx2 := p3.X - p1.X
	cy2 := p3.Y - p1.Y

	s1 := cx1 * cy2
	s2 := cy1 * cx2

	// Residual check: back-compute each product's factor and nudge by
	// one ULP in the sign direction if the division reveals rounding
	// loss.
	if cy2 != 0 {
		if r := s1/cy2 - cx1; r != 0 {
			s1 = math.Nextafter(s1, s1+math.Copysign(1, r))
		}
	}
	if cx2 != 0 {
		if r := s2/cx2 - cy1; r != 0 {
			s2 = math.Nextafter(s2, s2+math.Copysign(1, r))
		}
	}

	return eqZero(s1 - s2)
}

// cross returns the z-component of (p2-p1) x (p3-p2), used by the
// convexity test in the ring builder and the orientation tests in
// segmentsIntersect.
func cross(p1, p2, p3 Point) float64 {
	return (p2.X-p1.X)*(p3.Y-p2.Y) - (p2.Y-p1.Y)*(p3.X-p2.X)
}

// segmentCoversPoint reports whether p lies on segment s, including its
// endpoints. Used both directly and as the collinear-overlap fallback of
// segmentsIntersect.
func segmentCoversPoint(s Segment, p Point) bool {
	if !collinear(s.A, s.B, p) {
		return false
	}
	r := s.Rect()
	return r.ContainsPoint(p)
}

// segmentsIntersect reports whether two segments share any point.
//
// Order of tests: rect-overlap prefilter, then
// endpoint-equality shortcut, then the parametric cross-product test,
// falling back to segmentCoversPoint on both ends of both segments when
// the segments are collinear. Parallel, non-collinear segments return
// false.
func segmentsIntersect(s1, s2 Segment) bool {
	if !s1.Rect().Intersects(s2.Rect()) {
		return false
	}

	if s1.A.Equal(s2.A) || s1.A.Equal(s2.B) || s1.B.Equal(s2.A) || s1.B.Equal(s2.B) {
		return true
	}

	d1 := cross(s2.A, s2.B, s1.A)
	d2 := cross(s2.A, s2.B, s1.B)
	d3 := cross(s1.A, s1.B, s2.A)
	d4 := cross(s1.A, s1.B, s2.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear-overlap fallback: any endpoint of either segment lying on
	// the other segment implies intersection.
	if eqZero(d1) && segmentCoversPoint(s2, s1.A) {
		return true
	}
	if eqZero(d2) && segmentCoversPoint(s2, s1.B) {
		return true
	}
	if eqZero(d3) && segmentCoversPoint(s1, s2.A) {
		return true
	}
	if eqZero(d4) && segmentCoversPoint(s1, s2.B) {
		return true
	}

	return false
}

// segmentIntersection returns the intersection point of two segments
// that are known (or suspected) to cross non-collinearly. ok is false
// when the segments are parallel or do not intersect.
func segmentIntersection(s1, s2 Segment) (p Point, ok bool) {
	if !segmentsIntersect(s1, s2) {
		return Point{}, false
	}

	x1, y1 := s1.A.X, s1.A.Y
	x2, y2 := s1.B.X, s1.B.Y
	x3, y3 := s2.A.X, s2.A.Y
	x4, y4 := s2.B.X, s2.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if eqZero(denom) {
		// Collinear overlap: no single intersection point, report the
		// first of s2.A, s2.B, s1.A, s1.B that lies on both segments.
		for _, cand := range []Point{s2.A, s2.B, s1.A, s1.B} {
			if segmentCoversPoint(s1, cand) && segmentCoversPoint(s2, cand) {
				return cand, true
			}
		}
		return Point{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	t := tNum / denom

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}

// raycast classifies query point p against segment seg for the
// even-odd point-in-polygon rule.
//
//   - rcOut: p does not contribute to the crossing count.
//   - rcIn: p is strictly left of seg with the ray (running toward +X)
//     piercing it exactly once; contributes to the crossing count.
//   - rcOn: p lies on seg; callers that allow boundary hits stop here.
//
// Horizontal segments, coincident points, and the classic endpoint-Y
// "nudge toward infinity" disambiguation are all handled so that a
// vertex shared by two edges counts as exactly one crossing.
func raycast(seg Segment, p Point) raycastResult {
	a, b := seg.A, seg.B

	if p.Equal(a) || p.Equal(b) {
		return rcOn
	}

	// Horizontal edge: only "on" if the point lies on the segment; it
	// never contributes a crossing either way.
	if a.Y == b.Y {
		if p.Y != a.Y {
			return rcOut
		}
		if p.X >= fmin(a.X, b.X) && p.X <= fmax(a.X, b.X) {
			return rcOn
		}
		return rcOut
	}

	// Orient so a.Y < b.Y to simplify the half-open interval test below.
	if a.Y > b.Y {
		a, b = b, a
	}

	qy := p.Y
	if qy == a.Y || qy == b.Y {
		// Classic odd-crossing disambiguation: nudge the query point's Y
		// by one ULP toward +infinity so a ray passing exactly through a
		// shared vertex is attributed to only one of the two edges that
		// meet there.
		qy = math.Nextafter(qy, math.Inf(1))
	}

	if qy < a.Y || qy > b.Y {
		return rcOut
	}

	// x of the segment at height qy.
	t := (qy - a.Y) / (b.Y - a.Y)
	xAtY := a.X + t*(b.X-a.X)

	if eqZero(p.X - xAtY) {
		return rcOn
	}
	if p.X < xAtY {
		return rcIn
	}
	return rcOut
}
