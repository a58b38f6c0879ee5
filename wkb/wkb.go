// Package wkb reads and writes Well-Known Binary geometry
// representations, plus the hex-WKB convention (a WKB payload encoded as
// an uppercase hex string, as PostGIS and most WKB-consuming tools
// emit). Byte order is little- or big-endian per the leading byte order
// marker; the PostGIS SRID-extension high bit on the type code is
// tolerated and, when set, the following 4-byte SRID is read and
// discarded.
//
// Field decoding reads straight off byte slices at known offsets via
// binary.LittleEndian/BigEndian, no reflection.
package wkb

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	tg "github.com/tidwall/tg-go"
)

// ErrSyntax reports a WKB parse failure.
type ErrSyntax struct {
	Offset int
	Reason string
}

func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("wkb: syntax error at byte %d: %s", e.Offset, e.Reason)
}

const (
	wkbPoint              = 1
	wkbLineString         = 2
	wkbPolygon            = 3
	wkbMultiPoint         = 4
	wkbMultiLineString    = 5
	wkbMultiPolygon       = 6
	wkbGeometryCollection = 7

	zOffset  = 1000
	mOffset  = 2000
	zmOffset = 3000

	sridFlag = 0x20000000
)

// Parse decodes a single WKB geometry from raw bytes.
func Parse(data []byte) (tg.Geometry, error) {
	r := &reader{data: data}
	return r.readGeometry()
}

// ParseHex decodes a hex-WKB string (case-insensitive).
func ParseHex(s string) (tg.Geometry, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return tg.Geometry{}, &ErrSyntax{Reason: "invalid hex: " + err.Error()}
	}
	return Parse(data)
}

type reader struct {
	data []byte
	pos  int
}

func (r *reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return &ErrSyntax{Offset: r.pos, Reason: "truncated input"}
	}
	return nil
}

func (r *reader) readByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) byteOrder() (binary.ByteOrder, error) {
	b, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return binary.BigEndian, nil
	}
	return binary.LittleEndian, nil
}

func (r *reader) readUint32(order binary.ByteOrder) (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := order.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) readFloat64(order binary.ByteOrder) (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := order.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// header decodes the byte-order marker, base geometry type, and Z/M
// dimensionality, tolerating the PostGIS EWKB SRID-extension bit.
func (r *reader) header() (order binary.ByteOrder, baseType uint32, hasZ, hasM bool, err error) {
	order, err = r.byteOrder()
	if err != nil {
		return
	}
	raw, err := r.readUint32(order)
	if err != nil {
		return
	}
	if raw&sridFlag != 0 {
		raw &^= sridFlag
		if _, err = r.readUint32(order); err != nil {
			return
		}
	}
	switch {
	case raw >= zmOffset:
		hasZ, hasM = true, true
		baseType = raw - zmOffset
	case raw >= mOffset:
		hasM = true
		baseType = raw - mOffset
	case raw >= zOffset:
		hasZ = true
		baseType = raw - zOffset
	default:
		baseType = raw
	}
	return
}

func (r *reader) readCoord(order binary.ByteOrder, hasZ, hasM bool) (tg.Point, float64, float64, error) {
	x, err := r.readFloat64(order)
	if err != nil {
		return tg.Point{}, 0, 0, err
	}
	y, err := r.readFloat64(order)
	if err != nil {
		return tg.Point{}, 0, 0, err
	}
	var z, m float64
	if hasZ {
		if z, err = r.readFloat64(order); err != nil {
			return tg.Point{}, 0, 0, err
		}
	}
	if hasM {
		if m, err = r.readFloat64(order); err != nil {
			return tg.Point{}, 0, 0, err
		}
	}
	return tg.Point{X: x, Y: y}, z, m, nil
}

func (r *reader) readPoints(order binary.ByteOrder, hasZ, hasM bool) ([]tg.Point, []float64, []float64, error) {
	n, err := r.readUint32(order)
	if err != nil {
		return nil, nil, nil, err
	}
	pts := make([]tg.Point, n)
	var zs, ms []float64
	if hasZ {
		zs = make([]float64, n)
	}
	if hasM {
		ms = make([]float64, n)
	}
	for i := uint32(0); i < n; i++ {
		pt, z, m, err := r.readCoord(order, hasZ, hasM)
		if err != nil {
			return nil, nil, nil, err
		}
		pts[i] = pt
		if hasZ {
			zs[i] = z
		}
		if hasM {
			ms[i] = m
		}
	}
	return pts, zs, ms, nil
}

func (r *reader) readGeometry() (tg.Geometry, error) {
	order, baseType, hasZ, hasM, err := r.header()
	if err != nil {
		return tg.Geometry{}, err
	}
	switch baseType {
	case wkbPoint:
		pt, z, m, err := r.readCoord(order, hasZ, hasM)
		if err != nil {
			return tg.Geometry{}, err
		}
		g := tg.NewPoint(pt)
		if hasZ {
			g = g.WithZM([]float64{z}, nil)
		}
		if hasM {
			g = g.WithZM(nil, []float64{m})
		}
		return g, nil
	case wkbLineString:
		pts, z, m, err := r.readPoints(order, hasZ, hasM)
		if err != nil {
			return tg.Geometry{}, err
		}
		if len(pts) == 0 {
			return tg.NewEmptyLineString(), nil
		}
		g, err := tg.NewLineStringGeometry(pts, tg.BuildOptions{})
		if err != nil {
			return tg.Geometry{}, err
		}
		return g.WithZM(z, m), nil
	case wkbPolygon:
		return r.readPolygon(order, hasZ, hasM)
	case wkbMultiPoint:
		n, err := r.readUint32(order)
		if err != nil {
			return tg.Geometry{}, err
		}
		pts := make([]tg.Point, 0, n)
		for i := uint32(0); i < n; i++ {
			g, err := r.readGeometry()
			if err != nil {
				return tg.Geometry{}, err
			}
			pt, _ := g.AsPoint()
			pts = append(pts, pt)
		}
		return tg.NewMultiPoint(pts), nil
	case wkbMultiLineString:
		n, err := r.readUint32(order)
		if err != nil {
			return tg.Geometry{}, err
		}
		lines := make([]tg.Geometry, 0, n)
		for i := uint32(0); i < n; i++ {
			g, err := r.readGeometry()
			if err != nil {
				return tg.Geometry{}, err
			}
			lines = append(lines, g)
		}
		return tg.NewMultiLineString(lines), nil
	case wkbMultiPolygon:
		n, err := r.readUint32(order)
		if err != nil {
			return tg.Geometry{}, err
		}
		polys := make([]tg.Geometry, 0, n)
		for i := uint32(0); i < n; i++ {
			g, err := r.readGeometry()
			if err != nil {
				return tg.Geometry{}, err
			}
			polys = append(polys, g)
		}
		return tg.NewMultiPolygon(polys), nil
	case wkbGeometryCollection:
		n, err := r.readUint32(order)
		if err != nil {
			return tg.Geometry{}, err
		}
		geoms := make([]tg.Geometry, 0, n)
		for i := uint32(0); i < n; i++ {
			g, err := r.readGeometry()
			if err != nil {
				return tg.Geometry{}, err
			}
			geoms = append(geoms, g)
		}
		return tg.NewGeometryCollection(geoms), nil
	default:
		return tg.Geometry{}, &ErrSyntax{Offset: r.pos, Reason: fmt.Sprintf("unknown WKB type %d", baseType)}
	}
}

func (r *reader) readPolygon(order binary.ByteOrder, hasZ, hasM bool) (tg.Geometry, error) {
	nrings, err := r.readUint32(order)
	if err != nil {
		return tg.Geometry{}, err
	}
	if nrings == 0 {
		return tg.NewEmptyPolygon(), nil
	}
	ext, _, _, err := r.readPoints(order, hasZ, hasM)
	if err != nil {
		return tg.Geometry{}, err
	}
	var holes [][]tg.Point
	for i := uint32(1); i < nrings; i++ {
		h, _, _, err := r.readPoints(order, hasZ, hasM)
		if err != nil {
			return tg.Geometry{}, err
		}
		holes = append(holes, h)
	}
	return tg.NewPolygonGeometry(ext, holes, tg.BuildOptions{})
}
