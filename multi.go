package tg

import "sort"

// multiSpread is the fixed fan-out for a Multi's index; unlike
// Ring/Line, Multi's fan-out is not caller-configurable.
const multiSpread = 32

// Multi is the shared backing store for MultiPoint, MultiLineString,
// MultiPolygon, and GeometryCollection: an ordered list of child
// geometries plus, once it has enough children to be worth it, a
// Hilbert-curve-ordered rect index over them.
type Multi struct {
	children []Geometry
	rect     Rect

	// hilbertOrder[i] is the original children index occupying leaf slot
	// i of the index; nil when no index was built.
	hilbertOrder []int32
	index        *multiIndex

	rc *refCounted
}

// buildMulti assembles a Multi from children in caller order. Children
// are retained, not copied: the Multi shares ownership, matching Ring's
// Clone/Copy contract.
func buildMulti(children []Geometry) *Multi {
	m := &Multi{children: children, rc: newRefCounted()}
	if len(children) == 0 {
		return m
	}

	m.rect = children[0].Rect()
	for _, c := range children[1:] {
		m.rect = m.rect.Union(c.Rect())
	}

	if len(children) >= 2*multiSpread {
		order := make([]int32, len(children))
		for i := range order {
			order[i] = int32(i)
		}
		sort.Slice(order, func(a, b int) bool {
			ra := children[order[a]].Rect()
			rb := children[order[b]].Rect()
			return hilbertCode(ra.Center(), m.rect) < hilbertCode(rb.Center(), m.rect)
		})
		rects := make([]Rect, len(order))
		for i, childIdx := range order {
			rects[i] = children[childIdx].Rect()
		}
		m.hilbertOrder = order
		m.index = buildMultiIndex(rects, multiSpread)
	}

	return m
}

func (m *Multi) numChildren() int {
	if m == nil {
		return 0
	}
	return len(m.children)
}

func (m *Multi) childAt(i int) Geometry { return m.children[i] }

// ChildIterFunc is called once per candidate child during an indexed or
// linear Multi search; returning false stops the traversal early.
type ChildIterFunc func(childIdx int, child Geometry) bool

// Search visits every child of m whose rect intersects qr. Falls back
// to a linear scan below the
// index-build threshold.
func (m *Multi) Search(qr Rect, iter ChildIterFunc) bool {
	if m == nil || len(m.children) == 0 || !m.rect.Intersects(qr) {
		return true
	}
	if m.index == nil {
		for i, c := range m.children {
			if c.Rect().Intersects(qr) {
				if !iter(i, c) {
					return false
				}
			}
		}
		return true
	}
	return m.index.search(0, 0, qr, func(leafSlot int) bool {
		childIdx := int(m.hilbertOrder[leafSlot])
		c := m.children[childIdx]
		if !c.Rect().Intersects(qr) {
			return true
		}
		return iter(childIdx, c)
	})
}

// multiIndex is a flat bottom-up rect tree over an arbitrary item list,
// the same leaf-grouping shape as the Natural Index's levels but keyed
// by item position rather than ring segment.
type multiIndex struct {
	spread int
	levels [][]Rect
	n      int // number of leaf items
}

func buildMultiIndex(rects []Rect, spread int) *multiIndex {
	n := len(rects)
	nleaf := (n + spread - 1) / spread
	leaf := make([]Rect, nleaf)
	for i := 0; i < nleaf; i++ {
		start := i * spread
		end := start + spread
		if end > n {
			end = n
		}
		rect := rects[start]
		for j := start + 1; j < end; j++ {
			rect = rect.Union(rects[j])
		}
		leaf[i] = rect
	}

	levels := [][]Rect{leaf}
	for len(levels[0]) > 1 {
		cur := levels[0]
		ngroup := (len(cur) + spread - 1) / spread
		parent := make([]Rect, ngroup)
		for i := 0; i < ngroup; i++ {
			start := i * spread
			end := start + spread
			if end > len(cur) {
				end = len(cur)
			}
			rect := cur[start]
			for j := start + 1; j < end; j++ {
				rect = rect.Union(cur[j])
			}
			parent[i] = rect
		}
		levels = append([][]Rect{parent}, levels...)
	}

	return &multiIndex{spread: spread, levels: levels, n: n}
}

func (idx *multiIndex) search(level, i int, qr Rect, iter func(leafSlot int) bool) bool {
	if !idx.levels[level][i].Intersects(qr) {
		return true
	}
	if level == len(idx.levels)-1 {
		start := i * idx.spread
		end := start + idx.spread
		if end > idx.n {
			end = idx.n
		}
		for s := start; s < end; s++ {
			if !iter(s) {
				return false
			}
		}
		return true
	}
	childStart := i * idx.spread
	childEnd := childStart + idx.spread
	if n := len(idx.levels[level+1]); childEnd > n {
		childEnd = n
	}
	for c := childStart; c < childEnd; c++ {
		if !idx.search(level+1, c, qr, iter) {
			return false
		}
	}
	return true
}

// Clone returns a shared-ownership handle.
func (m *Multi) Clone() *Multi {
	if m == nil {
		return nil
	}
	if m.rc != nil {
		m.rc.retain()
	}
	return m
}

// Copy returns a new Multi over a fresh copy of the child slice,
// rebuilding the index; the child geometries themselves are shared,
// not copied.
func (m *Multi) Copy() *Multi {
	if m == nil {
		return nil
	}
	children := make([]Geometry, len(m.children))
	copy(children, m.children)
	return buildMulti(children)
}

// newMultiGeometry wraps children of a uniform element kind into the
// appropriate Multi-backed Geometry.
func newMultiGeometry(kind Kind, children []Geometry) Geometry {
	if len(children) == 0 {
		return Geometry{kind: kind, base: baseMulti, multi: buildMulti(nil), flags: FlagIsEmpty}
	}
	return Geometry{kind: kind, base: baseMulti, multi: buildMulti(children)}
}

// NewMultiPoint builds a MultiPoint from point geometries.
func NewMultiPoint(points []Point) Geometry {
	children := make([]Geometry, len(points))
	for i, p := range points {
		children[i] = NewPoint(p)
	}
	return newMultiGeometry(KindMultiPoint, children)
}

// NewMultiLineString builds a MultiLineString from child LineStrings.
func NewMultiLineString(lines []Geometry) Geometry {
	return newMultiGeometry(KindMultiLineString, lines)
}

// NewMultiPolygon builds a MultiPolygon from child Polygons.
func NewMultiPolygon(polys []Geometry) Geometry {
	return newMultiGeometry(KindMultiPolygon, polys)
}

// NewGeometryCollection builds a heterogeneous collection.
func NewGeometryCollection(geoms []Geometry) Geometry {
	return newMultiGeometry(KindGeometryCollection, geoms)
}
