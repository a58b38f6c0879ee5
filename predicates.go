package tg

// This file implements the predicate surface by dispatching on each
// argument's base-tag. Multi and GeometryCollection lift the base
// predicates through the standard logical quantifiers: Intersects is
// existential over a multi argument's children, Contains is universal
// over a multi second argument and existential over a multi first
// argument. Crosses/Overlaps are the one documented gap: no DE-9IM
// matrix is computed, so they always report false alongside
// ErrUnsupportedPredicate.

// Intersects reports whether a and b share at least one point.
func Intersects(a, b Geometry) bool { return intersects(a, b, true) }

// Covers reports whether every point of b lies within a; a boundary
// point of a counts as covered.
func Covers(a, b Geometry) bool { return contains(a, b, true) }

// Contains is Covers' strict form: a touch at a's boundary alone does
// not satisfy it.
func Contains(a, b Geometry) bool { return contains(a, b, false) }

// CoveredBy is Covers with its arguments reversed.
func CoveredBy(a, b Geometry) bool { return Covers(b, a) }

// Within is Contains with its arguments reversed.
func Within(a, b Geometry) bool { return Contains(b, a) }

// Disjoint is the negation of Intersects.
func Disjoint(a, b Geometry) bool { return !Intersects(a, b) }

// Touches reports whether a and b share a boundary point but their
// interiors do not cross.
func Touches(a, b Geometry) bool {
	return intersects(a, b, true) && !intersects(a, b, false)
}

// Equals reports spatial equality: a and b occupy the same point set,
// independent of vertex order, duplicate points, or winding direction.
func Equals(a, b Geometry) bool {
	return Covers(a, b) && Covers(b, a)
}

// Crosses and Overlaps require a full DE-9IM matrix, which this engine
// never computes. Both always report false alongside
// ErrUnsupportedPredicate so callers can distinguish "computed false"
// from "not supported".
func Crosses(a, b Geometry) (bool, error)  { return false, ErrUnsupportedPredicate }
func Overlaps(a, b Geometry) (bool, error) { return false, ErrUnsupportedPredicate }

func intersects(a, b Geometry, allowOnEdge bool) bool {
	// Empty geometries are transparent: an empty operand never
	// intersects anything, regardless of whatever zero-valued fields its
	// base carries (an empty Point's pt is the zero Point, not "no
	// point").
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if a.base == baseMulti {
		for i := 0; i < a.multi.numChildren(); i++ {
			child := a.multi.childAt(i)
			if child.IsEmpty() {
				continue
			}
			if intersects(child, b, allowOnEdge) {
				return true
			}
		}
		return false
	}
	if b.base == baseMulti {
		return intersects(b, a, allowOnEdge)
	}
	switch a.base {
	case basePoint:
		return geometryIntersectsPoint(b, a.pt, allowOnEdge)
	case baseLine:
		return lineIntersects(a.line, b, allowOnEdge)
	case baseRing:
		return ringIntersects(a.ring, b, allowOnEdge)
	case basePoly:
		return polyIntersects(a.poly, b, allowOnEdge)
	}
	return false
}

func geometryIntersectsPoint(g Geometry, p Point, allowOnEdge bool) bool {
	switch g.base {
	case basePoint:
		return g.pt.Equal(p)
	case baseLine:
		return lineContainsPointOn(g.line, p)
	case baseRing:
		return g.ring.ContainsPoint(p, allowOnEdge).Hit
	case basePoly:
		return g.poly.ContainsPoint(p, allowOnEdge)
	case baseMulti:
		for i := 0; i < g.multi.numChildren(); i++ {
			child := g.multi.childAt(i)
			if child.IsEmpty() {
				continue
			}
			if geometryIntersectsPoint(child, p, allowOnEdge) {
				return true
			}
		}
	}
	return false
}

// lineContainsPointOn reports whether p lies exactly on one of l's
// segments (a LineString has no interior, so this is its only notion of
// "contains a point").
func lineContainsPointOn(l *Ring, p Point) bool {
	if !l.Rect().ContainsPoint(p) {
		return false
	}
	hit := false
	l.Search(Rect{Min: p, Max: p}, func(segIdx int, seg Segment) bool {
		if segmentCoversPoint(seg, p) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

func lineIntersects(l *Ring, b Geometry, allowOnEdge bool) bool {
	switch b.base {
	case basePoint:
		return lineContainsPointOn(l, b.pt)
	case baseLine:
		return linesIntersect(l, b.line)
	case baseRing:
		return b.ring.IntersectsLine(l, allowOnEdge)
	case basePoly:
		return polyIntersectsLine(b.poly, l, allowOnEdge)
	case baseMulti:
		for i := 0; i < b.multi.numChildren(); i++ {
			child := b.multi.childAt(i)
			if child.IsEmpty() {
				continue
			}
			if lineIntersects(l, child, allowOnEdge) {
				return true
			}
		}
	}
	return false
}

func linesIntersect(a, b *Ring) bool {
	if !a.Rect().Intersects(b.Rect()) {
		return false
	}
	small, big := smaller(a, b)
	hit := false
	for i := 0; i < small.NumSegs() && !hit; i++ {
		seg := small.SegmentAt(i)
		big.Search(seg.Rect(), func(segIdx int, bseg Segment) bool {
			if segmentsIntersect(seg, bseg) {
				hit = true
				return false
			}
			return true
		})
	}
	return hit
}

func ringIntersects(r *Ring, b Geometry, allowOnEdge bool) bool {
	switch b.base {
	case basePoint:
		return r.ContainsPoint(b.pt, allowOnEdge).Hit
	case baseLine:
		return r.IntersectsLine(b.line, allowOnEdge)
	case baseRing:
		return r.IntersectsRing(b.ring, allowOnEdge)
	case basePoly:
		return polyRingIntersects(b.poly, r, allowOnEdge)
	case baseMulti:
		for i := 0; i < b.multi.numChildren(); i++ {
			child := b.multi.childAt(i)
			if child.IsEmpty() {
				continue
			}
			if ringIntersects(r, child, allowOnEdge) {
				return true
			}
		}
	}
	return false
}

func polyIntersects(p *Polygon, b Geometry, allowOnEdge bool) bool {
	switch b.base {
	case basePoint:
		return p.ContainsPoint(b.pt, allowOnEdge)
	case baseLine:
		return polyIntersectsLine(p, b.line, allowOnEdge)
	case baseRing:
		return polyRingIntersects(p, b.ring, allowOnEdge)
	case basePoly:
		return polyPolyIntersects(p, b.poly, allowOnEdge)
	case baseMulti:
		for i := 0; i < b.multi.numChildren(); i++ {
			child := b.multi.childAt(i)
			if child.IsEmpty() {
				continue
			}
			if polyIntersects(p, child, allowOnEdge) {
				return true
			}
		}
	}
	return false
}

// polyIntersectsLine checks the exterior boundary first (cheap, catches
// most cases), then falls back to a single representative-point
// containment test for a line wholly inside the polygon with no
// boundary touch.
func polyIntersectsLine(p *Polygon, l *Ring, allowOnEdge bool) bool {
	if p.exterior.IntersectsLine(l, allowOnEdge) {
		return true
	}
	return p.ContainsPoint(l.PointAt(0), true)
}

func polyRingIntersects(p *Polygon, r *Ring, allowOnEdge bool) bool {
	if p.exterior.IntersectsRing(r, allowOnEdge) {
		return true
	}
	for _, h := range p.holes {
		if h.IntersectsRing(r, allowOnEdge) {
			return true
		}
	}
	return p.ContainsPoint(r.PointAt(0), true)
}

func polyPolyIntersects(a, b *Polygon, allowOnEdge bool) bool {
	if a.exterior.IntersectsRing(b.exterior, allowOnEdge) {
		return true
	}
	for _, h := range a.holes {
		if h.IntersectsRing(b.exterior, allowOnEdge) {
			return true
		}
	}
	for _, h := range b.holes {
		if h.IntersectsRing(a.exterior, allowOnEdge) {
			return true
		}
	}
	return a.ContainsPoint(b.exterior.PointAt(0), true) || b.ContainsPoint(a.exterior.PointAt(0), true)
}

func contains(a, b Geometry, allowOnEdge bool) bool {
	// Empty geometries are transparent: an empty operand is never
	// contained by, nor contains, anything.
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if b.base == baseMulti {
		n := b.multi.numChildren()
		any := false
		for i := 0; i < n; i++ {
			child := b.multi.childAt(i)
			if child.IsEmpty() {
				continue
			}
			any = true
			if !contains(a, child, allowOnEdge) {
				return false
			}
		}
		return any
	}
	if a.base == baseMulti {
		for i := 0; i < a.multi.numChildren(); i++ {
			child := a.multi.childAt(i)
			if child.IsEmpty() {
				continue
			}
			if contains(child, b, allowOnEdge) {
				return true
			}
		}
		return false
	}
	switch a.base {
	case basePoint:
		p2, ok := b.AsPoint()
		return ok && a.pt.Equal(p2)
	case baseLine:
		return lineContains(a.line, b)
	case baseRing:
		return ringContains(a.ring, b, allowOnEdge)
	case basePoly:
		return polyContains(a.poly, b, allowOnEdge)
	}
	return false
}

// lineContains implements the only containment a LineString supports:
// every point of b lies on a's path. LineStrings have no interior, so a
// LineString never contains a Ring or Polygon.
func lineContains(l *Ring, b Geometry) bool {
	switch b.base {
	case basePoint:
		return lineContainsPointOn(l, b.pt)
	case baseLine:
		for i := 0; i < b.line.NumSegs(); i++ {
			seg := b.line.SegmentAt(i)
			mid := Point{X: (seg.A.X + seg.B.X) / 2, Y: (seg.A.Y + seg.B.Y) / 2}
			if !lineContainsPointOn(l, seg.A) || !lineContainsPointOn(l, seg.B) || !lineContainsPointOn(l, mid) {
				return false
			}
		}
		return true
	}
	return false
}

func ringContains(r *Ring, b Geometry, allowOnEdge bool) bool {
	switch b.base {
	case basePoint:
		return r.ContainsPoint(b.pt, allowOnEdge).Hit
	case baseLine:
		return r.ContainsLine(b.line, allowOnEdge)
	case baseRing:
		return r.ContainsRing(b.ring, allowOnEdge)
	case basePoly:
		return r.ContainsRing(b.poly.exterior, allowOnEdge)
	}
	return false
}

func polyContains(poly *Polygon, b Geometry, allowOnEdge bool) bool {
	switch b.base {
	case basePoint:
		return poly.ContainsPoint(b.pt, allowOnEdge)
	case baseLine:
		return polyContainsLine(poly, b.line, allowOnEdge)
	case baseRing:
		return polyContainsRing(poly, b.ring, allowOnEdge)
	case basePoly:
		return polyContainsPoly(poly, b.poly, allowOnEdge)
	}
	return false
}

func polyContainsLine(poly *Polygon, l *Ring, allowOnEdge bool) bool {
	if !poly.exterior.ContainsLine(l, allowOnEdge) {
		return false
	}
	for _, h := range poly.holes {
		if h.IntersectsLine(l, true) {
			return false
		}
	}
	return true
}

func polyContainsRing(poly *Polygon, r *Ring, allowOnEdge bool) bool {
	if !poly.exterior.ContainsRing(r, allowOnEdge) {
		return false
	}
	for _, h := range poly.holes {
		if h.IntersectsRing(r, true) {
			return false
		}
	}
	return true
}

func polyContainsPoly(a, b *Polygon, allowOnEdge bool) bool {
	if !a.exterior.ContainsRing(b.exterior, allowOnEdge) {
		return false
	}
	for _, h := range a.holes {
		if h.IntersectsRing(b.exterior, true) {
			return false
		}
	}
	return true
}
