package tg

import (
	"container/heap"
	"math"
)

// kNN nearest-neighbor search is best-first branch-and-bound over the
// Natural Index or a Multi's rect tree: a min-heap of pending entries,
// each either an unexpanded subtree (keyed by a caller-supplied lower
// bound on its rect's distance to the query) or a concrete candidate
// (keyed by a caller-supplied exact distance). Popping a concrete
// candidate before any unexpanded entry with a smaller key proves it is
// the true nearest: every entry still in the heap is provably farther
// away.
//
// Distance is never hard-coded to Euclidean: callers supply the
// distance functions themselves (rect-to-query and segment/child-to-
// query), so the same traversal serves any metric, a multi-criteria
// ranking, or a two-pass refine-then-deliver search. A distance
// function can report "more": the entry is re-enqueued with a freshly
// computed distance instead of being expanded or delivered, letting a
// cheap first-pass bound be tightened once it reaches the front of the
// queue.

// RectDistFunc computes a caller-defined distance from the query to
// rect, used to bound an index subtree. more requests refinement: the
// entry is popped, distance recomputed via another call to the same
// function, and re-enqueued instead of being expanded.
type RectDistFunc func(rect Rect) (dist float64, more bool)

// SegDistFunc computes a caller-defined distance from the query to one
// of a ring's segments. more requests refinement, as with
// RectDistFunc.
type SegDistFunc func(segIdx int, seg Segment) (dist float64, more bool)

// NearestSegFunc receives a ring's segments in non-decreasing distance
// order. Returning false stops the search.
type NearestSegFunc func(segIdx int, seg Segment, dist float64) bool

// ChildDistFunc computes a caller-defined distance from the query to
// one of a Multi's children. more requests refinement, as with
// RectDistFunc.
type ChildDistFunc func(childIdx int, child Geometry) (dist float64, more bool)

// NearestChildFunc receives a Multi's children in non-decreasing
// distance order. Returning false stops the search.
type NearestChildFunc func(childIdx int, child Geometry, dist float64) bool

type knnEntry struct {
	key    float64 // distance: exact for leaves, caller-supplied bound for branches
	level  int     // tree level; unused for a linear (unindexed) seed
	idx    int     // node index within level
	leaf   bool
	segIdx int  // valid when leaf: the segment index itself
	more   bool // entry wants its distance refreshed before being expanded/delivered
}

type knnHeap []knnEntry

func (h knnHeap) Len() int            { return len(h) }
func (h knnHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h knnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnHeap) Push(x interface{}) { *h = append(*h, x.(knnEntry)) }
func (h *knnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// rectDistSq is the squared Euclidean distance from p to its nearest
// point on rect (0 if p is inside rect): the default admissible lower
// bound used by the Euclidean convenience wrappers below.
func rectDistSq(rect Rect, p Point) float64 {
	dx := 0.0
	if p.X < rect.Min.X {
		dx = rect.Min.X - p.X
	} else if p.X > rect.Max.X {
		dx = p.X - rect.Max.X
	}
	dy := 0.0
	if p.Y < rect.Min.Y {
		dy = rect.Min.Y - p.Y
	} else if p.Y > rect.Max.Y {
		dy = p.Y - rect.Max.Y
	}
	return dx*dx + dy*dy
}

// segPointDistSq is the squared distance from p to its closest point on
// segment seg (which may be an interior point, not just an endpoint).
func segPointDistSq(seg Segment, p Point) float64 {
	dx := seg.B.X - seg.A.X
	dy := seg.B.Y - seg.A.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.distSq(seg.A)
	}
	t := ((p.X-seg.A.X)*dx + (p.Y-seg.A.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := seg.A.X + t*dx
	cy := seg.A.Y + t*dy
	return p.distSq(Point{X: cx, Y: cy})
}

func euclideanRectDist(p Point) RectDistFunc {
	return func(rect Rect) (float64, bool) { return rectDistSq(rect, p), false }
}

func euclideanSegDist(p Point) SegDistFunc {
	return func(_ int, seg Segment) (float64, bool) { return segPointDistSq(seg, p), false }
}

func euclideanChildDist(p Point) ChildDistFunc {
	return func(_ int, c Geometry) (float64, bool) { return rectDistSq(c.Rect(), p), false }
}

// Nearest walks r's segments in non-decreasing distance order as
// defined by rectDist and segDist, delivering each to iter until the
// queue drains or iter returns false. rectDist bounds an index subtree
// and is only consulted when r is indexed; pass nil to force a linear
// seed over every segment via segDist alone. segDist is required.
// Nearest reports false when r is empty or when iter stops the search
// by returning false; it reports true once the queue drains.
func (r *Ring) Nearest(rectDist RectDistFunc, segDist SegDistFunc, iter NearestSegFunc) bool {
	if r.Empty() {
		return false
	}
	if r.index == nil || rectDist == nil {
		return nearestSegLinear(r, segDist, iter)
	}
	return nearestSegIndexed(r, rectDist, segDist, iter)
}

// NearestSegment returns the ring segment closest to p under ordinary
// Euclidean distance. ok is false only for an empty ring.
func (r *Ring) NearestSegment(p Point) (segIdx int, seg Segment, dist float64, ok bool) {
	r.Nearest(euclideanRectDist(p), euclideanSegDist(p), func(i int, s Segment, d float64) bool {
		segIdx, seg, dist, ok = i, s, sqrtf(d), true
		return false
	})
	return
}

func nearestSegLinear(r *Ring, segDist SegDistFunc, iter NearestSegFunc) bool {
	h := &knnHeap{}
	heap.Init(h)
	for i := 0; i < r.nsegs; i++ {
		d, more := segDist(i, r.SegmentAt(i))
		heap.Push(h, knnEntry{key: d, leaf: true, segIdx: i, more: more})
	}
	for h.Len() > 0 {
		e := heap.Pop(h).(knnEntry)
		if e.more {
			d, more := segDist(e.segIdx, r.SegmentAt(e.segIdx))
			heap.Push(h, knnEntry{key: d, leaf: true, segIdx: e.segIdx, more: more})
			continue
		}
		if !iter(e.segIdx, r.SegmentAt(e.segIdx), e.key) {
			return false
		}
	}
	return true
}

func nearestSegIndexed(r *Ring, rectDist RectDistFunc, segDist SegDistFunc, iter NearestSegFunc) bool {
	idx := r.index
	d, more := rectDist(idx.rectAt(0, 0))
	h := &knnHeap{{key: d, level: 0, idx: 0, more: more}}
	heap.Init(h)

	for h.Len() > 0 {
		e := heap.Pop(h).(knnEntry)
		if e.leaf {
			if e.more {
				d, more := segDist(e.segIdx, r.SegmentAt(e.segIdx))
				heap.Push(h, knnEntry{key: d, leaf: true, segIdx: e.segIdx, more: more})
				continue
			}
			if !iter(e.segIdx, r.SegmentAt(e.segIdx), e.key) {
				return false
			}
			continue
		}
		if e.more {
			d, more := rectDist(idx.rectAt(e.level, e.idx))
			heap.Push(h, knnEntry{key: d, level: e.level, idx: e.idx, more: more})
			continue
		}
		if e.level == len(idx.levels)-1 {
			start, end := idx.leafSegRange(e.idx)
			if end > r.nsegs {
				end = r.nsegs
			}
			for s := start; s < end; s++ {
				d, more := segDist(s, r.SegmentAt(s))
				heap.Push(h, knnEntry{key: d, leaf: true, segIdx: s, more: more})
			}
			continue
		}
		childStart := e.idx * idx.spread
		childEnd := childStart + idx.spread
		if n := idx.sizeAt(e.level + 1); childEnd > n {
			childEnd = n
		}
		for c := childStart; c < childEnd; c++ {
			rect := idx.rectAt(e.level+1, c)
			d, more := rectDist(rect)
			heap.Push(h, knnEntry{key: d, level: e.level + 1, idx: c, more: more})
		}
	}
	return true
}

// multiKnnEntry mirrors knnEntry for a Multi's flat rect tree.
type multiKnnEntry struct {
	key   float64
	level int
	idx   int
	leaf  bool
	child int
	more  bool
}

type multiKnnHeap []multiKnnEntry

func (h multiKnnHeap) Len() int            { return len(h) }
func (h multiKnnHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h multiKnnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *multiKnnHeap) Push(x interface{}) { *h = append(*h, x.(multiKnnEntry)) }
func (h *multiKnnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Nearest walks m's children in non-decreasing distance order as
// defined by rectDist and childDist, delivering each to iter until the
// queue drains or iter returns false. rectDist bounds an index subtree
// and is only consulted when m is indexed; pass nil to force a linear
// seed over every child via childDist alone. childDist is required.
// Nearest reports false when m has no children or when iter stops the
// search by returning false; it reports true once the queue drains.
func (m *Multi) Nearest(rectDist RectDistFunc, childDist ChildDistFunc, iter NearestChildFunc) bool {
	if m == nil || len(m.children) == 0 {
		return false
	}
	if m.index == nil || rectDist == nil {
		return nearestChildLinear(m, childDist, iter)
	}
	return nearestChildIndexed(m, rectDist, childDist, iter)
}

// NearestChild returns the child of m closest to p by rect distance
// (children are ranked by distance-to-rect, not distance-to-exact-shape —
// an exact-shape refinement is left to the caller via a second pass over the returned
// candidate if needed).
func (m *Multi) NearestChild(p Point) (childIdx int, child Geometry, ok bool) {
	m.Nearest(euclideanRectDist(p), euclideanChildDist(p), func(i int, c Geometry, d float64) bool {
		childIdx, child, ok = i, c, true
		return false
	})
	return
}

func nearestChildLinear(m *Multi, childDist ChildDistFunc, iter NearestChildFunc) bool {
	h := &multiKnnHeap{}
	heap.Init(h)
	for i, c := range m.children {
		d, more := childDist(i, c)
		heap.Push(h, multiKnnEntry{key: d, leaf: true, child: i, more: more})
	}
	for h.Len() > 0 {
		e := heap.Pop(h).(multiKnnEntry)
		if e.more {
			d, more := childDist(e.child, m.children[e.child])
			heap.Push(h, multiKnnEntry{key: d, leaf: true, child: e.child, more: more})
			continue
		}
		if !iter(e.child, m.children[e.child], e.key) {
			return false
		}
	}
	return true
}

func nearestChildIndexed(m *Multi, rectDist RectDistFunc, childDist ChildDistFunc, iter NearestChildFunc) bool {
	idx := m.index
	d, more := rectDist(idx.levels[0][0])
	h := &multiKnnHeap{{key: d, level: 0, idx: 0, more: more}}
	heap.Init(h)
	for h.Len() > 0 {
		e := heap.Pop(h).(multiKnnEntry)
		if e.leaf {
			if e.more {
				d, more := childDist(e.child, m.children[e.child])
				heap.Push(h, multiKnnEntry{key: d, leaf: true, child: e.child, more: more})
				continue
			}
			if !iter(e.child, m.children[e.child], e.key) {
				return false
			}
			continue
		}
		if e.more {
			d, more := rectDist(idx.levels[e.level][e.idx])
			heap.Push(h, multiKnnEntry{key: d, level: e.level, idx: e.idx, more: more})
			continue
		}
		if e.level == len(idx.levels)-1 {
			start := e.idx * idx.spread
			end := start + idx.spread
			if end > idx.n {
				end = idx.n
			}
			for s := start; s < end; s++ {
				childIdx := int(m.hilbertOrder[s])
				d, more := childDist(childIdx, m.children[childIdx])
				heap.Push(h, multiKnnEntry{key: d, leaf: true, child: childIdx, more: more})
			}
			continue
		}
		childStart := e.idx * idx.spread
		childEnd := childStart + idx.spread
		if n := len(idx.levels[e.level+1]); childEnd > n {
			childEnd = n
		}
		for c := childStart; c < childEnd; c++ {
			d, more := rectDist(idx.levels[e.level+1][c])
			heap.Push(h, multiKnnEntry{key: d, level: e.level + 1, idx: c, more: more})
		}
	}
	return true
}

func sqrtf(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}
