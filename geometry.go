package tg

import "fmt"

// Kind identifies a Geometry's OGC type.
type Kind int

const (
	KindUnknown Kind = iota
	KindPoint
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// base is the internal discriminator enabling the "naked" forms: most
// geometries never need the xjson/extra-coordinate slots of a full Geom,
// so the common case (a bare point, line, ring, or polygon) carries
// nothing else.
type base uint8

const (
	baseGeom base = iota // full form: may carry Z/M/xjson/error
	basePoint
	baseLine
	baseRing
	basePoly
	baseMulti
	baseError
)

// Flags mirrors the bitset on a Geom header.
type Flags uint8

const (
	FlagHasZ Flags = 1 << iota
	FlagHasM
	FlagIsError
	FlagIsEmpty
	FlagIsFeature
	FlagIsFeatureCol
	FlagHasNullProps
	FlagIsUnlocated
)

// Geometry is a discriminated union over the seven OGC geometry kinds
// plus the bookkeeping the "full Geom" arm carries: extra dimensional
// coordinates (Z and/or M), an opaque extra-JSON payload for GeoJSON
// Feature round-tripping, and the poison-geometry error channel.
//
// The zero value is not a valid Geometry; always construct through the
// New* functions or a codec.
type Geometry struct {
	kind Kind
	base base

	pt    Point
	line  *Ring
	ring  *Ring
	poly  *Polygon
	multi *Multi

	flags Flags

	extraZ []float64
	extraM []float64

	xjson string

	errMsg  string
	isError bool
}

// Typeof returns the geometry's OGC kind.
func (g Geometry) Typeof() Kind { return g.kind }

// IsEmpty reports whether the geometry carries no coordinates.
func (g Geometry) IsEmpty() bool { return g.flags&FlagIsEmpty != 0 }

// HasZ / HasM report whether extra-dimensional coordinates are present.
func (g Geometry) HasZ() bool { return g.flags&FlagHasZ != 0 }
func (g Geometry) HasM() bool { return g.flags&FlagHasM != 0 }

// Dims returns the coordinate dimensionality: 2, 3 (Z or M), or 4 (ZM).
func (g Geometry) Dims() int {
	d := 2
	if g.HasZ() {
		d++
	}
	if g.HasM() {
		d++
	}
	return d
}

// IsFeature / IsFeatureCollection report GeoJSON Feature provenance.
func (g Geometry) IsFeature() bool           { return g.flags&FlagIsFeature != 0 }
func (g Geometry) IsFeatureCollection() bool { return g.flags&FlagIsFeatureCol != 0 }

// ExtraJSON returns the verbatim extra JSON object (GeoJSON Feature
// properties/id/foreign members) attached to this geometry, or "" if
// none.
func (g Geometry) ExtraJSON() string { return g.xjson }

// ExtraCoords returns the flat Z and/or M coordinate sequence, parallel
// to the geometry's point sequence.
func (g Geometry) ExtraCoords() (z, m []float64) { return g.extraZ, g.extraM }

// Rect returns the geometry's MBR. Points return a degenerate rect;
// empty geometries return the zero Rect.
func (g Geometry) Rect() Rect {
	switch g.base {
	case basePoint:
		return g.pt.Rect()
	case baseLine:
		return g.line.Rect()
	case baseRing:
		return g.ring.Rect()
	case basePoly:
		return g.poly.Rect()
	case baseMulti:
		return g.multi.rect
	default:
		return Rect{}
	}
}

// NumPoints, NumLines, NumPolys, NumGeometries report child counts.
// Each returns 0 when the geometry's kind doesn't carry that kind of
// child (e.g. NumLines on a Polygon).
func (g Geometry) NumPoints() int {
	if g.kind == KindMultiPoint {
		return g.multi.numChildren()
	}
	if g.kind == KindPoint && !g.IsEmpty() {
		return 1
	}
	return 0
}

func (g Geometry) NumLines() int {
	if g.kind == KindMultiLineString {
		return g.multi.numChildren()
	}
	return 0
}

func (g Geometry) NumPolys() int {
	if g.kind == KindMultiPolygon {
		return g.multi.numChildren()
	}
	return 0
}

func (g Geometry) NumGeometries() int {
	if g.kind == KindGeometryCollection {
		return g.multi.numChildren()
	}
	return 0
}

// PointAt, LineAt, PolyAt, GeometryAt index into the respective multi
// container. Panics on out-of-range index, matching Go slice semantics
// rather than the C surface's null-return convention (callers that want
// the null-return contract should bounds-check with Num*() first).
func (g Geometry) PointAt(i int) Geometry    { return g.multi.childAt(i) }
func (g Geometry) LineAt(i int) Geometry     { return g.multi.childAt(i) }
func (g Geometry) PolyAt(i int) Geometry     { return g.multi.childAt(i) }
func (g Geometry) GeometryAt(i int) Geometry { return g.multi.childAt(i) }

// AsPoint, AsLine, AsPolygon return the geometry's naked base value and
// ok=true when g's base-tag matches; otherwise the zero value and false.
func (g Geometry) AsPoint() (Point, bool) {
	if g.base == basePoint {
		return g.pt, true
	}
	return Point{}, false
}

func (g Geometry) AsLine() (*Ring, bool) {
	if g.base == baseLine {
		return g.line, true
	}
	return nil, false
}

func (g Geometry) AsRing() (*Ring, bool) {
	if g.base == baseRing {
		return g.ring, true
	}
	return nil, false
}

func (g Geometry) AsPolygon() (*Polygon, bool) {
	switch g.base {
	case basePoly:
		return g.poly, true
	case baseRing:
		p, _ := NewPolygon(g.ring, nil)
		return p, true
	}
	return nil, false
}

// NewPoint builds a Point geometry.
func NewPoint(p Point) Geometry {
	return Geometry{kind: KindPoint, base: basePoint, pt: p}
}

// NewEmptyPoint builds an empty Point geometry.
func NewEmptyPoint() Geometry {
	return Geometry{kind: KindPoint, base: basePoint, flags: FlagIsEmpty}
}

// NewEmptyLineString builds an empty LineString geometry.
func NewEmptyLineString() Geometry {
	return Geometry{kind: KindLineString, base: baseGeom, flags: FlagIsEmpty}
}

// NewEmptyPolygon builds an empty Polygon geometry.
func NewEmptyPolygon() Geometry {
	return Geometry{kind: KindPolygon, base: baseGeom, flags: FlagIsEmpty}
}

// NewLineStringGeometry builds a LineString geometry from points, stored
// as an open Ring.
func NewLineStringGeometry(points []Point, opts BuildOptions) (Geometry, error) {
	l, err := NewLineString(points, opts)
	if err != nil {
		return poisonGeometry(err), err
	}
	return Geometry{kind: KindLineString, base: baseLine, line: l}, nil
}

// NewPolygonGeometry builds a Polygon geometry from an exterior ring and
// holes.
func NewPolygonGeometry(exterior []Point, holes [][]Point, opts BuildOptions) (Geometry, error) {
	ext, err := NewRing(exterior, opts)
	if err != nil {
		return poisonGeometry(err), err
	}
	if len(holes) == 0 {
		return Geometry{kind: KindPolygon, base: baseRing, ring: ext}, nil
	}
	holeRings := make([]*Ring, len(holes))
	for i, h := range holes {
		hr, err := NewRing(h, opts)
		if err != nil {
			return poisonGeometry(err), err
		}
		holeRings[i] = hr
	}
	poly, err := NewPolygon(ext, holeRings)
	if err != nil {
		return poisonGeometry(err), err
	}
	return Geometry{kind: KindPolygon, base: basePoly, poly: poly}, nil
}

// WithZM attaches extra-dimensional coordinates to g. The slices are
// flat, parallel to the geometry's point sequence; a nil slice leaves
// the corresponding flag untouched.
func (g Geometry) WithZM(z, m []float64) Geometry {
	if len(z) > 0 {
		g.extraZ = z
		g.flags |= FlagHasZ
	}
	if len(m) > 0 {
		g.extraM = m
		g.flags |= FlagHasM
	}
	return g
}

// WithExtraJSON attaches a verbatim extra-JSON payload (GeoJSON Feature
// properties/id/foreign members).
func (g Geometry) WithExtraJSON(xjson string) Geometry {
	g.xjson = xjson
	return g
}

// AsFeature marks g as having originated from a GeoJSON Feature wrapper.
func (g Geometry) AsFeature() Geometry {
	g.flags |= FlagIsFeature
	return g
}

// AsFeatureCollection marks g as having originated from a GeoJSON
// FeatureCollection wrapper.
func (g Geometry) AsFeatureCollection() Geometry {
	g.flags |= FlagIsFeatureCol
	return g
}

// String renders a short debug form; see the wkt package for a full WKT
// writer.
func (g Geometry) String() string {
	if g.isError {
		return fmt.Sprintf("<tg.Geometry error: %s>", g.errMsg)
	}
	return fmt.Sprintf("<tg.Geometry %s>", g.kind)
}
