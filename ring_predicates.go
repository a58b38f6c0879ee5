package tg

// PointResult is the outcome of a point-in-polygon test: Hit reports
// containment (interior or, when requested, boundary); EdgeIndex is the
// segment index the point lies on when it is exactly on an edge, or -1
// otherwise.
type PointResult struct {
	Hit       bool
	EdgeIndex int
}

// ContainsPoint tests p against a closed ring using the even-odd
// raycast rule. allowOnEdge controls whether a point exactly on an edge
// counts as contained (covers semantics) or not (contains semantics).
//
// Selection order: Y-Stripes, then Natural Index, then a
// sequential scan, with a mandatory rect-cover prefilter in all cases.
func (r *Ring) ContainsPoint(p Point, allowOnEdge bool) PointResult {
	if r.Empty() || !r.rect.ContainsPoint(p) {
		return PointResult{Hit: false, EdgeIndex: -1}
	}

	var hit, onEdge bool
	var edgeIdx int
	switch {
	case r.ystripes != nil:
		hit, onEdge, edgeIdx = r.ystripes.pip(r, p, allowOnEdge)
	case r.index != nil:
		hit, onEdge, edgeIdx = r.indexPIP(p, allowOnEdge)
	default:
		hit, onEdge, edgeIdx = sequentialPIP(r, p, allowOnEdge)
	}
	if onEdge {
		return PointResult{Hit: allowOnEdge, EdgeIndex: edgeIdx}
	}
	return PointResult{Hit: hit, EdgeIndex: -1}
}

// sequentialPIP is the unindexed fallback raycast, used for small rings
// and exercised directly by tests to cross-check the indexed paths.
func sequentialPIP(r *Ring, p Point, allowOnEdge bool) (hit, onEdge bool, edgeIdx int) {
	crossings := 0
	for i := 0; i < r.nsegs; i++ {
		seg := r.SegmentAt(i)
		switch raycast(seg, p) {
		case rcOn:
			return allowOnEdge, true, i
		case rcIn:
			crossings++
		}
	}
	return crossings%2 == 1, false, -1
}

// ContainsSegment reports whether chord s lies entirely within r.
// Both endpoints must pass ContainsPoint; for concave
// rings an additional crossing test decides whether the chord exits
// through the exterior between two boundary-touching endpoints.
func (r *Ring) ContainsSegment(s Segment, allowOnEdge bool) bool {
	if r.Empty() || !r.rect.ContainsRect(s.Rect()) {
		return false
	}

	ra := r.ContainsPoint(s.A, true)
	rb := r.ContainsPoint(s.B, true)
	if !ra.Hit || !rb.Hit {
		return false
	}

	if !allowOnEdge {
		// The chord must not touch the boundary anywhere, including at
		// its own endpoints: a direct crossing test against every
		// segment is the simplest sufficient condition.
		return !r.anySegmentCrosses(s, -1, -1)
	}

	if r.convex {
		return true
	}

	aOnEdge := ra.EdgeIndex >= 0
	bOnEdge := rb.EdgeIndex >= 0

	if aOnEdge && bOnEdge {
		if ra.EdgeIndex == rb.EdgeIndex {
			return true
		}
		// Build the 4-point ring from the two boundary segments in ring
		// order and compare its winding to the host ring's: matching
		// winding means the chord cuts through the interior, so any
		// crossing with a segment other than the two it touches
		// disqualifies containment.
		i, j := ra.EdgeIndex, rb.EdgeIndex
		segI := r.SegmentAt(i)
		segJ := r.SegmentAt(j)
		quad, err := NewRing([]Point{segI.A, segI.B, segJ.B, segJ.A}, BuildOptions{Index: IndexNone})
		if err != nil {
			return false
		}
		sameWinding := quad.clockwise == r.clockwise
		if !sameWinding {
			return false
		}
		return !r.anySegmentCrosses(s, i, j)
	}

	// Exactly one endpoint on an edge, or neither: same crossing test
	// with relaxed tolerance (the endpoint's own touching segment, if
	// any, is excluded from disqualifying crossings).
	excludeA, excludeB := -1, -1
	if aOnEdge {
		excludeA = ra.EdgeIndex
	}
	if bOnEdge {
		excludeB = rb.EdgeIndex
	}
	return !r.anySegmentCrosses(s, excludeA, excludeB)
}

// anySegmentCrosses reports whether s shares any point (a crossing or a
// touch) with a ring segment other than exclude1 and exclude2, using
// the Natural Index via Search when available.
func (r *Ring) anySegmentCrosses(s Segment, exclude1, exclude2 int) bool {
	crossed := false
	r.Search(s.Rect(), func(segIdx int, seg Segment) bool {
		if segIdx == exclude1 || segIdx == exclude2 {
			return true
		}
		if segmentsIntersect(s, seg) {
			crossed = true
			return false
		}
		return true
	})
	return crossed
}

// IntersectsSegment reports whether chord s shares any point with r's
// boundary or interior.
func (r *Ring) IntersectsSegment(s Segment, allowOnEdge bool) bool {
	if r.Empty() || !r.rect.Intersects(s.Rect()) {
		return false
	}

	if r.ContainsPoint(s.A, true).Hit || r.ContainsPoint(s.B, true).Hit {
		return true
	}

	crossings := 0
	r.Search(s.Rect(), func(segIdx int, seg Segment) bool {
		if !segmentsIntersect(s, seg) {
			return true
		}
		if allowOnEdge {
			crossings++
			return false // any crossing suffices when edges count
		}
		// A crossing only counts when the segments are non-collinear
		// and the ring endpoint isn't one of s's own endpoints (a mere
		// touch, not a real crossing into/out of the boundary).
		if collinear(seg.A, seg.B, s.A) && collinear(seg.A, seg.B, s.B) {
			return true // collinear overlap: not a transversal crossing
		}
		if seg.A.Equal(s.A) || seg.A.Equal(s.B) || seg.B.Equal(s.A) || seg.B.Equal(s.B) {
			return true
		}
		crossings++
		return crossings < 2
	})

	if allowOnEdge {
		return crossings > 0
	}
	return crossings >= 2
}

// smaller returns the ring with fewer segments, for ordered argument
// swapping so the search iterates over the smaller ring's segments.
func smaller(a, b *Ring) (small, big *Ring) {
	if a.nsegs <= b.nsegs {
		return a, b
	}
	return b, a
}

// ContainsRing reports whether r fully covers/contains other (every
// point of other is within r, per allowOnEdge).
func (r *Ring) ContainsRing(other *Ring, allowOnEdge bool) bool {
	if r.Empty() || other.Empty() || !r.rect.ContainsRect(other.rect) {
		return false
	}
	for i := 0; i < other.nsegs; i++ {
		if !r.ContainsSegment(other.SegmentAt(i), allowOnEdge) {
			return false
		}
	}
	return true
}

// IntersectsRing reports whether r and other's boundaries or interiors
// share any point.
func (r *Ring) IntersectsRing(other *Ring, allowOnEdge bool) bool {
	if r.Empty() || other.Empty() || !r.rect.Intersects(other.rect) {
		return false
	}
	small, big := smaller(r, other)
	for i := 0; i < small.nsegs; i++ {
		if big.IntersectsSegment(small.SegmentAt(i), allowOnEdge) {
			return true
		}
	}
	// A ring fully inside the other with no boundary touch still
	// intersects (interior containment); check one representative point
	// from the smaller ring against the larger.
	return big.ContainsPoint(small.points[0], allowOnEdge).Hit ||
		small.ContainsPoint(big.points[0], allowOnEdge).Hit
}

// ContainsLine reports whether every segment of l lies within r.
func (r *Ring) ContainsLine(l *Ring, allowOnEdge bool) bool {
	if r.Empty() || l.Empty() || !r.rect.ContainsRect(l.rect) {
		return false
	}
	for i := 0; i < l.nsegs; i++ {
		if !r.ContainsSegment(l.SegmentAt(i), allowOnEdge) {
			return false
		}
	}
	return true
}

// IntersectsLine reports whether l shares any point with r.
func (r *Ring) IntersectsLine(l *Ring, allowOnEdge bool) bool {
	if r.Empty() || l.Empty() || !r.rect.Intersects(l.rect) {
		return false
	}
	for i := 0; i < l.nsegs; i++ {
		if r.IntersectsSegment(l.SegmentAt(i), allowOnEdge) {
			return true
		}
	}
	return false
}
