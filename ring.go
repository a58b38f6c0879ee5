package tg

import "fmt"

// IndexKind selects which spatial accelerator a Ring or Line builds at
// construction time.
type IndexKind int

const (
	// IndexDefault defers to the package-level default (set by
	// SetDefaultIndex).
	IndexDefault IndexKind = iota
	// IndexNone never builds an index, regardless of point count.
	IndexNone
	// IndexNatural builds the hierarchical Natural Index (§4.3).
	IndexNatural
	// IndexYStripes builds the Y-Stripes index (§4.4); only valid for
	// closed rings, ignored (falls back to Natural) for open lines.
	IndexYStripes
)

// BuildOptions controls how NewRing/NewLineString build a geometry's
// index.
type BuildOptions struct {
	// Index selects the accelerator. Zero value is IndexDefault.
	Index IndexKind
	// Spread overrides the package default fan-out for this geometry
	// only. Zero means "use the default". Legal range is 2..4096;
	// out-of-range values are clamped by clampSpread.
	Spread int
}

// Ring is a closed or open planar polyline with precomputed winding,
// convexity, area and an optional spatial index.
//
// A Ring with closed == true represents the RING base-tag;
// closed == false is the LINE base-tag. Both share this type because
// their fields, builder, and (for Natural Index purposes) their search
// operations are identical; only closure and Y-Stripes eligibility
// differ.
type Ring struct {
	points   []Point // N+1 points when closed (points[N] == points[0]); N when open
	nsegs    int
	rect     Rect
	convex   bool
	clockwise bool
	area     float64
	closed   bool

	index    *naturalIndex
	ystripes *yStripesIndex

	// borrowed marks a ring built by rectRing: a throwaway header over a
	// Rect's four corners, never shared outside the predicate call that
	// built it and ineligible for refcount-sharing.
	borrowed bool
	rc       *refCounted
}

// NumPoints returns the number of distinct points (excluding the
// synthetic closing point for closed rings).
func (r *Ring) NumPoints() int {
	if r == nil {
		return 0
	}
	if r.closed {
		return len(r.points) - 1
	}
	return len(r.points)
}

// PointAt returns the i'th point, 0 <= i < NumPoints().
func (r *Ring) PointAt(i int) Point { return r.points[i] }

// Points returns the raw point slice, including the synthetic closing
// point for closed rings. Callers must not mutate the returned slice.
func (r *Ring) Points() []Point { return r.points }

// NumSegs returns the number of segments.
func (r *Ring) NumSegs() int { return r.nsegs }

// SegmentAt returns the i'th segment, 0 <= i < NumSegs().
func (r *Ring) SegmentAt(i int) Segment {
	return Segment{A: r.points[i], B: r.points[i+1]}
}

// Rect returns the ring's minimum bounding rectangle.
func (r *Ring) Rect() Rect { return r.rect }

// Convex reports whether all consecutive segment pairs turn the same
// direction.
func (r *Ring) Convex() bool { return r.convex }

// Clockwise reports the ring's winding direction.
func (r *Ring) Clockwise() bool { return r.clockwise }

// Area returns the absolute shoelace area.
func (r *Ring) Area() float64 { return r.area }

// Closed reports whether this is a RING (true) or LINE (false) base.
func (r *Ring) Closed() bool { return r.closed }

// Empty reports whether the ring/line is degenerate: fewer than the
// minimum points needed for its own closure contract.
func (r *Ring) Empty() bool {
	if r == nil {
		return true
	}
	if r.closed {
		return r.nsegs < 3
	}
	return r.nsegs < 1
}

// HasIndex reports whether a Natural Index was built.
func (r *Ring) HasIndex() bool { return r.index != nil }

// HasYStripes reports whether a Y-Stripes index was built.
func (r *Ring) HasYStripes() bool { return r.ystripes != nil }

func clampSpread(spread int) int {
	if spread <= 0 {
		spread = defaultEnv.spread()
	}
	if spread < 2 {
		spread = 2
	}
	if spread > 4096 {
		spread = 4096
	}
	return spread
}

// resolveIndexKind applies IndexDefault against the package default.
func resolveIndexKind(k IndexKind) IndexKind {
	if k == IndexDefault {
		return defaultEnv.indexKind()
	}
	return k
}

// NewRing builds a closed ring from points. If the caller's first and
// last point already coincide they are treated as one logical point (the
// builder writes the canonical closing point itself); otherwise closure
// is added implicitly, so points[N] always equals points[0].
func NewRing(points []Point, opts BuildOptions) (*Ring, error) {
	return buildRing(points, true, opts)
}

// NewLineString builds an open line from points.
func NewLineString(points []Point, opts BuildOptions) (*Ring, error) {
	return buildRing(points, false, opts)
}

func buildRing(input []Point, closed bool, opts BuildOptions) (*Ring, error) {
	pts := input
	// Deduplicate an explicit trailing closure point supplied by the
	// caller so nsegs accounting stays canonical.
	if closed && len(pts) >= 2 && pts[0].Equal(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}

	n := len(pts)
	if closed && n < 3 {
		return nil, fmt.Errorf("tg: ring needs at least 3 distinct points, got %d: %w", n, ErrDegenerateRing)
	}
	if !closed && n < 2 {
		return nil, fmt.Errorf("tg: line needs at least 2 points, got %d: %w", n, ErrDegenerateRing)
	}

	r := &Ring{closed: closed}
	r.points = make([]Point, n+1)
	copy(r.points, pts)
	if closed {
		r.points[n] = r.points[0]
		r.nsegs = n
	} else {
		r.points = r.points[:n]
		r.nsegs = n - 1
	}

	kind := resolveIndexKind(opts.Index)
	spread := clampSpread(opts.Spread)
	wantIndex := kind != IndexNone && r.nsegs >= 2*spread

	scanRing(r, wantIndex, spread)

	if wantIndex {
		switch kind {
		case IndexYStripes:
			if closed {
				r.ystripes = buildYStripes(r)
			} else {
				// Y-Stripes is only defined for closed rings; open
				// lines silently fall back to Natural.
				r.index = buildNaturalIndex(r, spread)
			}
		default:
			r.index = buildNaturalIndex(r, spread)
		}
	}

	r.rc = newRefCounted()
	return r, nil
}

// scanRing is the one-pass scan that computes the MBR,
// the clockwise accumulator, the convexity flag, and the area, all in a
// single walk over the segments. The Natural Index's leaf rects are
// built in a second pass (buildNaturalIndex) for clarity; the split is
// an implementation choice, not a contract.
func scanRing(r *Ring, _ bool, _ int) {
	pts := r.points
	nsegs := r.nsegs

	rect := Rect{Min: pts[0], Max: pts[0]}
	var cwc float64

	// Convexity is only defined for closed rings; it tests every
	// consecutive turn including the wraparound at the closing vertex.
	// nverts excludes the synthetic closing point (points[nverts] ==
	// points[0]), so wraparound indexing is modulo nverts.
	convex := r.closed
	haveSign := false
	var sign float64
	nverts := nsegs
	if !r.closed {
		nverts = 0 // disables the wraparound branch below
	}

	for i := 0; i < nsegs; i++ {
		a := pts[i]
		b := pts[i+1]
		rect = rect.ExpandPoint(b)
		cwc += (b.X - a.X) * (b.Y + a.Y)

		if convex {
			c := pts[(i+2)%nverts]
			x := cross(a, b, c)
			if !eqZero(x) {
				s := 1.0
				if x < 0 {
					s = -1.0
				}
				if !haveSign {
					sign = s
					haveSign = true
				} else if s != sign {
					convex = false
				}
			}
		}
	}

	r.rect = rect
	r.clockwise = cwc > 0
	r.area = absf(cwc) / 2
	r.convex = convex
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// rectRing builds a tiny, unindexed, borrowed ring from a rectangle's
// four corners, reused by predicates that need to run ring-level logic
// (contains/intersects) against a plain Rect without allocating a real
// indexed ring. This is the Go replacement for a header-punning
// "stack-ring trick".
func rectRing(r Rect) *Ring {
	pts := []Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
	ring, _ := buildRing(pts, true, BuildOptions{Index: IndexNone})
	ring.borrowed = true
	ring.rc = nil
	return ring
}
