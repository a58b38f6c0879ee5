package tg

import "math"

// yStripesIndex buckets a closed ring's segments by Y-coordinate stripe,
// an alternative PIP accelerator for highly concave ("spiky") rings
// where the Natural Index's rect descent degenerates toward a linear
// scan. Only ever built for closed rings.
type yStripesIndex struct {
	minY, maxY float64
	nstripes   int
	// offsets[i]..offsets[i+1] is the slice of members belonging to
	// stripe i; len(offsets) == nstripes+1.
	offsets []int32
	members []int32
}

// polsbyPopper returns the Polsby-Popper compactness score 4*pi*A/P^2:
// close to 1 for a circle, near 0 for a spiky shape.
func polsbyPopper(r *Ring) float64 {
	perimeter := 0.0
	for i := 0; i < r.nsegs; i++ {
		seg := r.SegmentAt(i)
		perimeter += seg.A.Distance(seg.B)
	}
	if perimeter == 0 {
		return 0
	}
	return (4 * math.Pi * r.area) / (perimeter * perimeter)
}

// buildYStripes builds the stripe index in two passes: count
// memberships per stripe, then fill.
func buildYStripes(r *Ring) *yStripesIndex {
	minY, maxY := r.rect.Min.Y, r.rect.Max.Y

	nstripes := int(float64(r.nsegs) * polsbyPopper(r))
	if nstripes < 32 {
		nstripes = 32
	}

	idx := &yStripesIndex{minY: minY, maxY: maxY, nstripes: nstripes}
	counts := make([]int32, nstripes)

	stripeRange := func(seg Segment) (lo, hi int) {
		return idx.stripeOf(fmin(seg.A.Y, seg.B.Y)), idx.stripeOf(fmax(seg.A.Y, seg.B.Y))
	}

	for i := 0; i < r.nsegs; i++ {
		lo, hi := stripeRange(r.SegmentAt(i))
		for s := lo; s <= hi; s++ {
			counts[s]++
		}
	}

	offsets := make([]int32, nstripes+1)
	var total int32
	for i := 0; i < nstripes; i++ {
		offsets[i] = total
		total += counts[i]
	}
	offsets[nstripes] = total

	members := make([]int32, total)
	cursor := make([]int32, nstripes)
	copy(cursor, offsets[:nstripes])

	for i := 0; i < r.nsegs; i++ {
		lo, hi := stripeRange(r.SegmentAt(i))
		for s := lo; s <= hi; s++ {
			members[cursor[s]] = int32(i)
			cursor[s]++
		}
	}

	idx.offsets = offsets
	idx.members = members
	return idx
}

// stripeOf maps a Y coordinate into [0, nstripes), clamped at the ends.
func (idx *yStripesIndex) stripeOf(y float64) int {
	if idx.maxY == idx.minY {
		return 0
	}
	t := (y - idx.minY) / (idx.maxY - idx.minY)
	s := int(t * float64(idx.nstripes))
	if s < 0 {
		s = 0
	}
	if s >= idx.nstripes {
		s = idx.nstripes - 1
	}
	return s
}

// pip runs the even-odd raycast rule restricted to the query point's
// stripe.
func (idx *yStripesIndex) pip(r *Ring, p Point, allowOnEdge bool) (hit bool, onEdge bool, edgeIdx int) {
	stripe := idx.stripeOf(p.Y)
	start, end := idx.offsets[stripe], idx.offsets[stripe+1]

	crossings := 0
	for m := start; m < end; m++ {
		segIdx := int(idx.members[m])
		seg := r.SegmentAt(segIdx)
		switch raycast(seg, p) {
		case rcOn:
			return allowOnEdge, true, segIdx
		case rcIn:
			crossings++
		}
	}
	return crossings%2 == 1, false, -1
}
