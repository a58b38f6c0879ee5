package tg

// naturalIndex is a hierarchical bounding-rect tree: a flat, bottom-up
// tree with configurable fan-out ("spread"), built once
// at ring-construction time and never mutated afterward. The leaves are
// implicit groups of the ring's own segment array; levels store one rect
// per group of `spread` children from the level below.
//
// levels[0] is the root, a single rect; levels[len(levels)-1] is the
// level directly above the segment array, one rect per group of up to
// `spread` consecutive segments.
type naturalIndex struct {
	spread int
	levels [][]Rect
	// float32 mirror of levels, read in place of levels when
	// lowPrecision is set. buildNaturalIndex never sets lowPrecision,
	// so every index built in this package uses the float64 levels.
	lowPrecision bool
	levels32     [][]float32Rect
}

func (idx *naturalIndex) nlevels() int { return len(idx.levels) + len(idx.levels32) }

func (idx *naturalIndex) rectAt(level, i int) Rect {
	if idx.lowPrecision {
		return idx.levels32[level][i].toRect()
	}
	return idx.levels[level][i]
}

func (idx *naturalIndex) sizeAt(level int) int {
	if idx.lowPrecision {
		return len(idx.levels32[level])
	}
	return len(idx.levels[level])
}

// buildNaturalIndex builds the tree bottom-up: first the leaf level (one
// rect per group of `spread` segments, unioning each segment's own
// rect), then successive parent levels (one rect per group of `spread`
// child rects) until a single root level remains.
func buildNaturalIndex(r *Ring, spread int) *naturalIndex {
	nsegs := r.nsegs
	nleaf := (nsegs + spread - 1) / spread

	leaf := make([]Rect, nleaf)
	for i := 0; i < nleaf; i++ {
		start := i * spread
		end := start + spread
		if end > nsegs {
			end = nsegs
		}
		rect := r.SegmentAt(start).Rect()
		for s := start + 1; s < end; s++ {
			rect = rect.Union(r.SegmentAt(s).Rect())
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

	idx := &naturalIndex{spread: spread, levels: levels}
	return idx
}

// leafSegRange returns the [start, end) segment range covered by leaf
// bucket i at the deepest level.
func (idx *naturalIndex) leafSegRange(i int) (start, end int) {
	start = i * idx.spread
	end = start + idx.spread
	return start, end
}

// SegIterFunc is called once per candidate segment during an indexed or
// linear ring search. Returning false stops the traversal early.
type SegIterFunc func(segIdx int, seg Segment) bool

// Search visits every segment of r whose rect intersects qr, in index
// traversal order (or ring point order when unindexed).
// Returns false if the iterator stopped the traversal early.
func (r *Ring) Search(qr Rect, iter SegIterFunc) bool {
	if !r.rect.Intersects(qr) {
		return true
	}
	if r.index == nil {
		return r.searchLinear(qr, iter)
	}
	return r.index.search(0, 0, qr, r, iter)
}

func (r *Ring) searchLinear(qr Rect, iter SegIterFunc) bool {
	for i := 0; i < r.nsegs; i++ {
		seg := r.SegmentAt(i)
		if seg.Rect().Intersects(qr) {
			if !iter(i, seg) {
				return false
			}
		}
	}
	return true
}

// search recursively descends from (level, i), widening into children
// whenever the stored rect intersects qr, and testing actual segment
// rects at the leaf level.
func (idx *naturalIndex) search(level, i int, qr Rect, r *Ring, iter SegIterFunc) bool {
	if !idx.rectAt(level, i).Intersects(qr) {
		return true
	}
	if level == len(idx.levels)-1 {
		start, end := idx.leafSegRange(i)
		if end > r.nsegs {
			end = r.nsegs
		}
		for s := start; s < end; s++ {
			seg := r.SegmentAt(s)
			if seg.Rect().Intersects(qr) {
				if !iter(s, seg) {
					return false
				}
			}
		}
		return true
	}

	// Children of (level, i) live at (level+1, i*spread .. i*spread+spread).
	childStart := i * idx.spread
	childEnd := childStart + idx.spread
	if n := idx.sizeAt(level + 1); childEnd > n {
		childEnd = n
	}
	for c := childStart; c < childEnd; c++ {
		if !idx.search(level+1, c, qr, r, iter) {
			return false
		}
	}
	return true
}

// indexPIP descends the Natural Index for point-in-polygon testing,
// pruning branches whose rect cannot possibly be pierced by the
// rightward ray from p.
// The pruning test must never discard a branch where the horizontal ray
// could still cross a contained segment: a branch survives unless p.Y is
// entirely outside its rect's Y range, or p.X is entirely to the right
// of its rect (the ray travels toward +X and only crosses segments at or
// right of p).
func (r *Ring) indexPIP(p Point, allowOnEdge bool) (hit bool, onEdge bool, edgeIdx int) {
	idx := r.index
	crossings, onEdge, edgeIdx := idx.pip(0, 0, p, r, allowOnEdge)
	if onEdge {
		return allowOnEdge, true, edgeIdx
	}
	return crossings%2 == 1, false, -1
}

func branchMaybeIn(rect Rect, p Point) bool {
	if p.Y < rect.Min.Y || p.Y > rect.Max.Y {
		return false
	}
	if p.X > rect.Max.X {
		return false
	}
	return true
}

// pip returns the raw crossing count contributed by the subtree rooted
// at (level, i), so that callers above can keep summing before ever
// taking a parity — taking parity at an interior node would corrupt the
// count whenever a single branch contributes more than one crossing.
func (idx *naturalIndex) pip(level, i int, p Point, r *Ring, allowOnEdge bool) (crossings int, onEdge bool, edgeIdx int) {
	rect := idx.rectAt(level, i)
	if !branchMaybeIn(rect, p) {
		return 0, false, -1
	}

	if level == len(idx.levels)-1 {
		start, end := idx.leafSegRange(i)
		if end > r.nsegs {
			end = r.nsegs
		}
		for s := start; s < end; s++ {
			seg := r.SegmentAt(s)
			switch raycast(seg, p) {
			case rcOn:
				return 0, true, s
			case rcIn:
				crossings++
			}
		}
		return crossings, false, -1
	}

	childStart := i * idx.spread
	childEnd := childStart + idx.spread
	if n := idx.sizeAt(level + 1); childEnd > n {
		childEnd = n
	}
	total := 0
	for c := childStart; c < childEnd; c++ {
		n, on, ei := idx.pip(level+1, c, p, r, allowOnEdge)
		if on {
			return 0, true, ei
		}
		total += n
	}
	return total, false, -1
}
