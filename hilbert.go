package tg

// Hilbert-curve ordering gives Multi's index good spatial locality
// without the cost of a full rect-MBR-optimizing build: children are
// sorted once by the Hilbert code of their rect center, then grouped
// into fixed-size buckets exactly like the Natural Index's leaf level.

const (
	hilbertBits = 16
	hilbertN    = 1 << hilbertBits
)

// hilbertCode maps p into the Hilbert-curve distance along a
// hilbertN x hilbertN grid spanning bounds. Degenerate (zero-width or
// zero-height) bounds map every point to the same code, which is
// harmless: Hilbert order only affects locality, never correctness.
func hilbertCode(p Point, bounds Rect) uint64 {
	x := normalizeToGrid(p.X, bounds.Min.X, bounds.Max.X)
	y := normalizeToGrid(p.Y, bounds.Min.Y, bounds.Max.Y)
	return hilbertXY2D(hilbertN, x, y)
}

func normalizeToGrid(v, lo, hi float64) uint32 {
	if hi <= lo {
		return 0
	}
	t := (v - lo) / (hi - lo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return uint32(t * float64(hilbertN-1))
}

// hilbertXY2D converts (x, y) on an n x n grid to its distance along the
// Hilbert curve; the textbook iterative algorithm (rotate-and-reflect
// each quadrant on the way from the coarsest bit to the finest).
func hilbertXY2D(n, x, y uint32) uint64 {
	var d uint64
	for s := n / 2; s > 0; s /= 2 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		x, y = hilbertRot(n, x, y, rx, ry)
	}
	return d
}

func hilbertRot(n, x, y, rx, ry uint32) (uint32, uint32) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
