package wkb

import (
	"encoding/binary"
	"math"

	tg "github.com/tidwall/tg-go"
)

// Format encodes g as little-endian WKB.
func Format(g tg.Geometry) []byte {
	var buf []byte
	buf = appendGeometry(buf, g)
	return buf
}

// FormatHex encodes g as uppercase hex-WKB.
func FormatHex(g tg.Geometry) string {
	return hexUpper(Format(g))
}

const hexDigits = "0123456789ABCDEF"

func hexUpper(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0xf]
	}
	return string(out)
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendFloat64(buf []byte, v float64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	return append(buf, tmp[:]...)
}

func appendCoord(buf []byte, p tg.Point) []byte {
	buf = appendFloat64(buf, p.X)
	buf = appendFloat64(buf, p.Y)
	return buf
}

func appendGeometry(buf []byte, g tg.Geometry) []byte {
	buf = append(buf, 1) // little-endian marker
	switch g.Typeof() {
	case tg.KindPoint:
		buf = appendUint32(buf, wkbPoint)
		if g.IsEmpty() {
			return appendCoord(buf, tg.Point{X: math.NaN(), Y: math.NaN()})
		}
		pt, _ := g.AsPoint()
		return appendCoord(buf, pt)
	case tg.KindLineString:
		buf = appendUint32(buf, wkbLineString)
		return appendLineBody(buf, g)
	case tg.KindPolygon:
		buf = appendUint32(buf, wkbPolygon)
		return appendPolygonBody(buf, g)
	case tg.KindMultiPoint:
		buf = appendUint32(buf, wkbMultiPoint)
		buf = appendUint32(buf, uint32(g.NumPoints()))
		for i := 0; i < g.NumPoints(); i++ {
			buf = appendGeometry(buf, g.PointAt(i))
		}
		return buf
	case tg.KindMultiLineString:
		buf = appendUint32(buf, wkbMultiLineString)
		buf = appendUint32(buf, uint32(g.NumLines()))
		for i := 0; i < g.NumLines(); i++ {
			buf = appendGeometry(buf, g.LineAt(i))
		}
		return buf
	case tg.KindMultiPolygon:
		buf = appendUint32(buf, wkbMultiPolygon)
		buf = appendUint32(buf, uint32(g.NumPolys()))
		for i := 0; i < g.NumPolys(); i++ {
			buf = appendGeometry(buf, g.PolyAt(i))
		}
		return buf
	case tg.KindGeometryCollection:
		buf = appendUint32(buf, wkbGeometryCollection)
		buf = appendUint32(buf, uint32(g.NumGeometries()))
		for i := 0; i < g.NumGeometries(); i++ {
			buf = appendGeometry(buf, g.GeometryAt(i))
		}
		return buf
	default:
		buf = appendUint32(buf, wkbGeometryCollection)
		return appendUint32(buf, 0)
	}
}

func appendLineBody(buf []byte, g tg.Geometry) []byte {
	l, ok := g.AsLine()
	if !ok {
		return appendUint32(buf, 0)
	}
	buf = appendUint32(buf, uint32(l.NumPoints()))
	for i := 0; i < l.NumPoints(); i++ {
		buf = appendCoord(buf, l.PointAt(i))
	}
	return buf
}

func appendRingBody(buf []byte, r *tg.Ring) []byte {
	pts := r.Points() // includes the synthetic closing point, per WKB convention
	buf = appendUint32(buf, uint32(len(pts)))
	for _, p := range pts {
		buf = appendCoord(buf, p)
	}
	return buf
}

func appendPolygonBody(buf []byte, g tg.Geometry) []byte {
	poly, ok := g.AsPolygon()
	if !ok || poly.Empty() {
		return appendUint32(buf, 0)
	}
	buf = appendUint32(buf, uint32(1+poly.NumHoles()))
	buf = appendRingBody(buf, poly.Exterior())
	for i := 0; i < poly.NumHoles(); i++ {
		buf = appendRingBody(buf, poly.HoleAt(i))
	}
	return buf
}
