// Package wkt reads and writes Well-Known Text geometry representations
// (POINT, LINESTRING, POLYGON, MULTIPOINT, MULTILINESTRING,
// MULTIPOLYGON, GEOMETRYCOLLECTION), including the EMPTY keyword.
//
// The parser accepts the Z, M and ZM dimensionality tags. It keeps the
// extra ordinates of a POINT and drops them for every other type. Format
// writes the tag and the extra ordinates of a POINT; every other type is
// written with X and Y only.
//
// The tokenizer is a small hand-rolled scanner over a string cursor;
// every parse failure is reported as an *ErrSyntax carrying the byte
// offset.
package wkt

import (
	"fmt"
	"strconv"
	"strings"

	tg "github.com/tidwall/tg-go"
)

// ErrSyntax reports a WKT parse failure at a specific byte offset.
type ErrSyntax struct {
	Offset int
	Reason string
}

func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("wkt: syntax error at offset %d: %s", e.Offset, e.Reason)
}

// Parse decodes a single WKT geometry string.
func Parse(s string) (tg.Geometry, error) {
	p := &parser{src: s}
	p.skipSpace()
	g, err := p.parseGeometry()
	if err != nil {
		return tg.Geometry{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return tg.Geometry{}, &ErrSyntax{Offset: p.pos, Reason: "unexpected trailing input"}
	}
	return g, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) peekWord() string {
	start := p.pos
	i := start
	for i < len(p.src) && isWordByte(p.src[i]) {
		i++
	}
	return strings.ToUpper(p.src[start:i])
}

func isWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func (p *parser) consumeWord() string {
	w := p.peekWord()
	p.pos += len(w)
	return w
}

func (p *parser) expectByte(b byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != b {
		return &ErrSyntax{Offset: p.pos, Reason: fmt.Sprintf("expected %q", b)}
	}
	p.pos++
	return nil
}

func (p *parser) parseGeometry() (tg.Geometry, error) {
	p.skipSpace()
	tag := p.consumeWord()

	hasZ, hasM := false, false
	p.skipSpace()
	switch p.peekWord() {
	case "ZM":
		hasZ, hasM = true, true
		p.consumeWord()
	case "Z":
		hasZ = true
		p.consumeWord()
	case "M":
		hasM = true
		p.consumeWord()
	}

	p.skipSpace()
	if p.peekWord() == "EMPTY" {
		p.consumeWord()
		return emptyGeometryOf(tag)
	}

	switch tag {
	case "POINT":
		return p.parsePoint(hasZ, hasM)
	case "LINESTRING":
		return p.parseLineString(hasZ, hasM)
	case "POLYGON":
		return p.parsePolygon(hasZ, hasM)
	case "MULTIPOINT":
		return p.parseMultiPoint(hasZ, hasM)
	case "MULTILINESTRING":
		return p.parseMultiLineString(hasZ, hasM)
	case "MULTIPOLYGON":
		return p.parseMultiPolygon(hasZ, hasM)
	case "GEOMETRYCOLLECTION":
		return p.parseGeometryCollection()
	default:
		return tg.Geometry{}, &ErrSyntax{Offset: p.pos, Reason: "unknown geometry tag " + tag}
	}
}

func emptyGeometryOf(tag string) (tg.Geometry, error) {
	switch tag {
	case "POINT":
		return tg.NewEmptyPoint(), nil
	case "LINESTRING":
		return tg.NewEmptyLineString(), nil
	case "POLYGON":
		return tg.NewEmptyPolygon(), nil
	case "MULTIPOINT":
		return tg.NewMultiPoint(nil), nil
	case "MULTILINESTRING":
		return tg.NewMultiLineString(nil), nil
	case "MULTIPOLYGON":
		return tg.NewMultiPolygon(nil), nil
	case "GEOMETRYCOLLECTION":
		return tg.NewGeometryCollection(nil), nil
	default:
		return tg.Geometry{}, &ErrSyntax{Reason: "unknown EMPTY geometry tag " + tag}
	}
}

func (p *parser) parseCoord(hasZ, hasM bool) (tg.Point, []float64, []float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && !isCoordSep(p.src[p.pos]) {
		p.pos++
	}
	fields := strings.Fields(p.src[start:p.pos])
	need := 2
	if hasZ {
		need++
	}
	if hasM {
		need++
	}
	if len(fields) < need {
		return tg.Point{}, nil, nil, &ErrSyntax{Offset: start, Reason: "short coordinate tuple"}
	}
	nums := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return tg.Point{}, nil, nil, &ErrSyntax{Offset: start, Reason: "bad number " + f}
		}
		nums[i] = v
	}
	pt := tg.Point{X: nums[0], Y: nums[1]}
	var z, m []float64
	idx := 2
	if hasZ {
		z = []float64{nums[idx]}
		idx++
	}
	if hasM {
		m = []float64{nums[idx]}
	}
	return pt, z, m, nil
}

func isCoordSep(b byte) bool { return b == ',' || b == ')' }

func (p *parser) parsePoint(hasZ, hasM bool) (tg.Geometry, error) {
	if err := p.expectByte('('); err != nil {
		return tg.Geometry{}, err
	}
	pt, z, m, err := p.parseCoord(hasZ, hasM)
	if err != nil {
		return tg.Geometry{}, err
	}
	if err := p.expectByte(')'); err != nil {
		return tg.Geometry{}, err
	}
	return tg.NewPoint(pt).WithZM(z, m), nil
}

func (p *parser) parsePointList(hasZ, hasM bool) ([]tg.Point, error) {
	if err := p.expectByte('('); err != nil {
		return nil, err
	}
	var pts []tg.Point
	for {
		p.skipSpace()
		pt, _, _, err := p.parseCoord(hasZ, hasM)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expectByte(')'); err != nil {
		return nil, err
	}
	return pts, nil
}

func (p *parser) parseLineString(hasZ, hasM bool) (tg.Geometry, error) {
	pts, err := p.parsePointList(hasZ, hasM)
	if err != nil {
		return tg.Geometry{}, err
	}
	return tg.NewLineStringGeometry(pts, tg.BuildOptions{})
}

func (p *parser) parseRing(hasZ, hasM bool) ([]tg.Point, error) {
	return p.parsePointList(hasZ, hasM)
}

func (p *parser) parsePolygon(hasZ, hasM bool) (tg.Geometry, error) {
	if err := p.expectByte('('); err != nil {
		return tg.Geometry{}, err
	}
	ext, err := p.parseRing(hasZ, hasM)
	if err != nil {
		return tg.Geometry{}, err
	}
	var holes [][]tg.Point
	for {
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			p.skipSpace()
			h, err := p.parseRing(hasZ, hasM)
			if err != nil {
				return tg.Geometry{}, err
			}
			holes = append(holes, h)
			continue
		}
		break
	}
	if err := p.expectByte(')'); err != nil {
		return tg.Geometry{}, err
	}
	return tg.NewPolygonGeometry(ext, holes, tg.BuildOptions{})
}

func (p *parser) parseMultiPoint(hasZ, hasM bool) (tg.Geometry, error) {
	if err := p.expectByte('('); err != nil {
		return tg.Geometry{}, err
	}
	var pts []tg.Point
	for {
		p.skipSpace()
		// WKT allows both MULTIPOINT(1 2, 3 4) and MULTIPOINT((1 2),(3 4)).
		if p.pos < len(p.src) && p.src[p.pos] == '(' {
			p.pos++
			pt, _, _, err := p.parseCoord(hasZ, hasM)
			if err != nil {
				return tg.Geometry{}, err
			}
			if err := p.expectByte(')'); err != nil {
				return tg.Geometry{}, err
			}
			pts = append(pts, pt)
		} else {
			pt, _, _, err := p.parseCoord(hasZ, hasM)
			if err != nil {
				return tg.Geometry{}, err
			}
			pts = append(pts, pt)
		}
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expectByte(')'); err != nil {
		return tg.Geometry{}, err
	}
	return tg.NewMultiPoint(pts), nil
}

func (p *parser) parseMultiLineString(hasZ, hasM bool) (tg.Geometry, error) {
	if err := p.expectByte('('); err != nil {
		return tg.Geometry{}, err
	}
	var lines []tg.Geometry
	for {
		p.skipSpace()
		pts, err := p.parsePointList(hasZ, hasM)
		if err != nil {
			return tg.Geometry{}, err
		}
		l, err := tg.NewLineStringGeometry(pts, tg.BuildOptions{})
		if err != nil {
			return tg.Geometry{}, err
		}
		lines = append(lines, l)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expectByte(')'); err != nil {
		return tg.Geometry{}, err
	}
	return tg.NewMultiLineString(lines), nil
}

func (p *parser) parseMultiPolygon(hasZ, hasM bool) (tg.Geometry, error) {
	if err := p.expectByte('('); err != nil {
		return tg.Geometry{}, err
	}
	var polys []tg.Geometry
	for {
		p.skipSpace()
		poly, err := p.parsePolygon(hasZ, hasM)
		if err != nil {
			return tg.Geometry{}, err
		}
		polys = append(polys, poly)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expectByte(')'); err != nil {
		return tg.Geometry{}, err
	}
	return tg.NewMultiPolygon(polys), nil
}

func (p *parser) parseGeometryCollection() (tg.Geometry, error) {
	if err := p.expectByte('('); err != nil {
		return tg.Geometry{}, err
	}
	var geoms []tg.Geometry
	for {
		p.skipSpace()
		g, err := p.parseGeometry()
		if err != nil {
			return tg.Geometry{}, err
		}
		geoms = append(geoms, g)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expectByte(')'); err != nil {
		return tg.Geometry{}, err
	}
	return tg.NewGeometryCollection(geoms), nil
}
