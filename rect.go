package tg

// Rect is an axis-aligned bounding rectangle with Min <= Max componentwise.
type Rect struct {
	Min, Max Point
}

// rectOf returns the MBR of two points, independent of their order.
func rectOf(a, b Point) Rect {
	return Rect{
		Min: Point{X: fmin(a.X, b.X), Y: fmin(a.Y, b.Y)},
		Max: Point{X: fmax(a.X, b.X), Y: fmax(a.Y, b.Y)},
	}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: fmin(r.Min.X, other.Min.X), Y: fmin(r.Min.Y, other.Min.Y)},
		Max: Point{X: fmax(r.Max.X, other.Max.X), Y: fmax(r.Max.Y, other.Max.Y)},
	}
}

// ExpandPoint returns the smallest rectangle covering both r and p.
func (r Rect) ExpandPoint(p Point) Rect {
	return Rect{
		Min: Point{X: fmin(r.Min.X, p.X), Y: fmin(r.Min.Y, p.Y)},
		Max: Point{X: fmax(r.Max.X, p.X), Y: fmax(r.Max.Y, p.Y)},
	}
}

// Intersects reports whether r and other overlap; edges touching counts
// as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Max.X < r.Min.X || other.Min.X > r.Max.X ||
		other.Max.Y < r.Min.Y || other.Min.Y > r.Max.Y)
}

// ContainsPoint reports whether p lies within or on the boundary of r.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether r fully covers other.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Max.X <= r.Max.X &&
		other.Min.Y >= r.Min.Y && other.Max.Y <= r.Max.Y
}

// Center returns the rectangle's midpoint, used by Hilbert ordering
// (multi.go).
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Width and Height report the rectangle's extents.
func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// float32Rect is a halved-memory rect used by the Natural Index when
// low-precision mode is enabled. Conversion from float64
// always rounds outward by one ULP-scale factor so containment tests
// never falsely deny a hit.
type float32Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// fdown/fup nudge a float64 outward by approximately one float32 ULP
// (2^-23) before narrowing, implementing a cheap outward-rounding
// multiplier so a narrowed rect never falsely denies containment.
func fdown(x float64) float64 {
	if x == 0 {
		return -miniEpsilon
	}
	if x > 0 {
		return x * (1 - ulp32)
	}
	return x * (1 + ulp32)
}

func fup(x float64) float64 {
	if x == 0 {
		return miniEpsilon
	}
	if x > 0 {
		return x * (1 + ulp32)
	}
	return x * (1 - ulp32)
}

const (
	ulp32       = 1.0 / (1 << 23)
	miniEpsilon = 1e-30
)

// toFloat32Rect narrows r, rounding outward so the float32 box never
// shrinks relative to the original double-precision box.
func toFloat32Rect(r Rect) float32Rect {
	return float32Rect{
		MinX: float32(fdown(r.Min.X)),
		MinY: float32(fdown(r.Min.Y)),
		MaxX: float32(fup(r.Max.X)),
		MaxY: float32(fup(r.Max.Y)),
	}
}

// toRect widens a float32Rect back to a Rect for intersection tests.
func (fr float32Rect) toRect() Rect {
	return Rect{
		Min: Point{X: float64(fr.MinX), Y: float64(fr.MinY)},
		Max: Point{X: float64(fr.MaxX), Y: float64(fr.MaxY)},
	}
}
