package wkt

import (
	"strconv"
	"strings"

	tg "github.com/tidwall/tg-go"
)

// Format renders g as WKT text.
func Format(g tg.Geometry) string {
	var b strings.Builder
	writeGeometry(&b, g)
	return b.String()
}

func writeGeometry(b *strings.Builder, g tg.Geometry) {
	switch g.Typeof() {
	case tg.KindPoint:
		b.WriteString("POINT ")
		if g.IsEmpty() {
			b.WriteString("EMPTY")
			return
		}
		z, m := g.ExtraCoords()
		switch {
		case len(z) > 0 && len(m) > 0:
			b.WriteString("ZM ")
		case len(z) > 0:
			b.WriteString("Z ")
		case len(m) > 0:
			b.WriteString("M ")
		}
		pt, _ := g.AsPoint()
		b.WriteByte('(')
		writeCoord(b, pt)
		for _, extra := range [][]float64{z, m} {
			if len(extra) > 0 {
				b.WriteByte(' ')
				b.WriteString(formatFloat(extra[0]))
			}
		}
		b.WriteByte(')')
	case tg.KindLineString:
		b.WriteString("LINESTRING ")
		writeLineBody(b, g)
	case tg.KindPolygon:
		b.WriteString("POLYGON ")
		writePolygonBody(b, g)
	case tg.KindMultiPoint:
		b.WriteString("MULTIPOINT ")
		if g.NumPoints() == 0 {
			b.WriteString("EMPTY")
			return
		}
		b.WriteByte('(')
		for i := 0; i < g.NumPoints(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			pt, _ := g.PointAt(i).AsPoint()
			b.WriteByte('(')
			writeCoord(b, pt)
			b.WriteByte(')')
		}
		b.WriteByte(')')
	case tg.KindMultiLineString:
		b.WriteString("MULTILINESTRING ")
		if g.NumLines() == 0 {
			b.WriteString("EMPTY")
			return
		}
		b.WriteByte('(')
		for i := 0; i < g.NumLines(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLineBody(b, g.LineAt(i))
		}
		b.WriteByte(')')
	case tg.KindMultiPolygon:
		b.WriteString("MULTIPOLYGON ")
		if g.NumPolys() == 0 {
			b.WriteString("EMPTY")
			return
		}
		b.WriteByte('(')
		for i := 0; i < g.NumPolys(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writePolygonBody(b, g.PolyAt(i))
		}
		b.WriteByte(')')
	case tg.KindGeometryCollection:
		b.WriteString("GEOMETRYCOLLECTION ")
		if g.NumGeometries() == 0 {
			b.WriteString("EMPTY")
			return
		}
		b.WriteByte('(')
		for i := 0; i < g.NumGeometries(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writeGeometry(b, g.GeometryAt(i))
		}
		b.WriteByte(')')
	default:
		b.WriteString("GEOMETRYCOLLECTION EMPTY")
	}
}

func writeLineBody(b *strings.Builder, g tg.Geometry) {
	l, ok := g.AsLine()
	if !ok || l.NumPoints() == 0 {
		b.WriteString("EMPTY")
		return
	}
	b.WriteByte('(')
	for i := 0; i < l.NumPoints(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		writeCoord(b, l.PointAt(i))
	}
	b.WriteByte(')')
}

func writeRingBody(b *strings.Builder, r *tg.Ring) {
	b.WriteByte('(')
	pts := r.Points() // includes the synthetic closing point
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		writeCoord(b, p)
	}
	b.WriteByte(')')
}

func writePolygonBody(b *strings.Builder, g tg.Geometry) {
	poly, ok := g.AsPolygon()
	if !ok || poly.Empty() {
		b.WriteString("EMPTY")
		return
	}
	b.WriteByte('(')
	writeRingBody(b, poly.Exterior())
	for i := 0; i < poly.NumHoles(); i++ {
		b.WriteString(", ")
		writeRingBody(b, poly.HoleAt(i))
	}
	b.WriteByte(')')
}

func writeCoord(b *strings.Builder, p tg.Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(formatFloat(p.Y))
}

func formatFloat(f float64) string {
	fmtByte := byte('g')
	if tg.PrintFixedFloats() {
		fmtByte = 'f'
	}
	return strconv.FormatFloat(f, fmtByte, -1, 64)
}
