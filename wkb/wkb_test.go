package wkb

import (
	"encoding/binary"
	"math"
	"testing"

	tg "github.com/tidwall/tg-go"
)

func TestPointRoundTrip(t *testing.T) {
	g := tg.NewPoint(tg.Point{X: 1, Y: 2})
	data := Format(g)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	pt, ok := got.AsPoint()
	if !ok || pt != (tg.Point{X: 1, Y: 2}) {
		t.Fatalf("AsPoint = %v, %v, want (1,2), true", pt, ok)
	}
}

func TestLineStringRoundTrip(t *testing.T) {
	g, err := tg.NewLineStringGeometry([]tg.Point{{0, 0}, {1, 1}, {2, 0}}, tg.BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data := Format(g)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	l, ok := got.AsLine()
	if !ok || l.NumPoints() != 3 {
		t.Fatalf("AsLine = %v, %v, want 3 points", l, ok)
	}
}

func TestPolygonWithHoleRoundTrip(t *testing.T) {
	ext := []tg.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := []tg.Point{{3, 3}, {7, 3}, {7, 7}, {3, 7}}
	g, err := tg.NewPolygonGeometry(ext, [][]tg.Point{hole}, tg.BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data := Format(g)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	poly, ok := got.AsPolygon()
	if !ok || poly.NumHoles() != 1 {
		t.Fatalf("AsPolygon = %v, %v, want 1 hole", poly, ok)
	}
}

func TestEmptyLineStringRoundTrip(t *testing.T) {
	g := tg.NewEmptyLineString()
	data := Format(g)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Errorf("expected empty LineString to round-trip as empty")
	}
}

func TestEmptyPolygonRoundTrip(t *testing.T) {
	g := tg.NewEmptyPolygon()
	data := Format(g)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Errorf("expected empty Polygon to round-trip as empty")
	}
}

func TestMultiPointRoundTrip(t *testing.T) {
	g := tg.NewMultiPoint([]tg.Point{{0, 0}, {1, 1}, {2, 2}})
	data := Format(g)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.NumPoints() != 3 {
		t.Fatalf("NumPoints = %d, want 3", got.NumPoints())
	}
}

func TestGeometryCollectionRoundTrip(t *testing.T) {
	pt := tg.NewPoint(tg.Point{0, 0})
	line, err := tg.NewLineStringGeometry([]tg.Point{{0, 0}, {1, 1}}, tg.BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	g := tg.NewGeometryCollection([]tg.Geometry{pt, line})
	data := Format(g)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.NumGeometries() != 2 {
		t.Fatalf("NumGeometries = %d, want 2", got.NumGeometries())
	}
}

func TestFormatHexAndParseHex(t *testing.T) {
	g := tg.NewPoint(tg.Point{X: 1, Y: 2})
	hx := FormatHex(g)
	got, err := ParseHex(hx)
	if err != nil {
		t.Fatal(err)
	}
	pt, ok := got.AsPoint()
	if !ok || pt != (tg.Point{X: 1, Y: 2}) {
		t.Fatalf("AsPoint = %v, %v, want (1,2), true", pt, ok)
	}
}

func TestParseHexIsCaseInsensitive(t *testing.T) {
	g := tg.NewPoint(tg.Point{X: 1, Y: 2})
	hx := FormatHex(g)
	lower := make([]byte, len(hx))
	for i := 0; i < len(hx); i++ {
		c := hx[i]
		if c >= 'A' && c <= 'F' {
			c = c - 'A' + 'a'
		}
		lower[i] = c
	}
	if _, err := ParseHex(string(lower)); err != nil {
		t.Fatalf("ParseHex(lowercase) failed: %v", err)
	}
}

func TestParseBigEndian(t *testing.T) {
	var buf []byte
	buf = append(buf, 0) // big-endian marker
	var typeBuf [4]byte
	binary.BigEndian.PutUint32(typeBuf[:], wkbPoint)
	buf = append(buf, typeBuf[:]...)
	var coord [16]byte
	binary.BigEndian.PutUint64(coord[:8], math.Float64bits(5))
	binary.BigEndian.PutUint64(coord[8:], math.Float64bits(6))
	buf = append(buf, coord[:]...)

	g, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	pt, ok := g.AsPoint()
	if !ok || pt != (tg.Point{X: 5, Y: 6}) {
		t.Fatalf("AsPoint = %v, %v, want (5,6), true", pt, ok)
	}
}

func TestParseSRIDExtensionBitIsTolerated(t *testing.T) {
	plain := Format(tg.NewPoint(tg.Point{X: 3, Y: 4}))
	// plain is: 1 byte order + 4 byte type + 16 byte coord.
	// Rebuild with the SRID flag set and an injected 4-byte SRID.
	var out []byte
	out = append(out, plain[0])
	typ := binary.LittleEndian.Uint32(plain[1:5])
	var typeBuf [4]byte
	binary.LittleEndian.PutUint32(typeBuf[:], typ|sridFlag)
	out = append(out, typeBuf[:]...)
	var sridBuf [4]byte
	binary.LittleEndian.PutUint32(sridBuf[:], 4326)
	out = append(out, sridBuf[:]...)
	out = append(out, plain[5:]...)

	g, err := Parse(out)
	if err != nil {
		t.Fatal(err)
	}
	pt, ok := g.AsPoint()
	if !ok || pt != (tg.Point{X: 3, Y: 4}) {
		t.Fatalf("AsPoint = %v, %v, want (3,4), true", pt, ok)
	}
}

func TestParseTruncatedInputIsError(t *testing.T) {
	_, err := Parse([]byte{1, 1, 0, 0})
	if err == nil {
		t.Fatal("expected an error for truncated input")
	}
}

func TestParseUnknownTypeIsError(t *testing.T) {
	var buf []byte
	buf = append(buf, 1)
	buf = appendUint32(buf, 99)
	if _, err := Parse(buf); err == nil {
		t.Fatal("expected an error for an unknown WKB type")
	}
}

func TestValueRoundTripsThroughScan(t *testing.T) {
	g, err := tg.NewLineStringGeometry([]tg.Point{{0, 0}, {1, 1}}, tg.BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	v := Value{G: g}
	driverVal, err := v.Value()
	if err != nil {
		t.Fatal(err)
	}
	raw, ok := driverVal.([]byte)
	if !ok {
		t.Fatalf("Value() = %T, want []byte", driverVal)
	}

	var out Value
	if err := out.Scan(raw); err != nil {
		t.Fatal(err)
	}
	l, ok := out.G.AsLine()
	if !ok || l.NumPoints() != 2 {
		t.Fatalf("Scan result AsLine = %v, %v, want 2 points", l, ok)
	}
}

func TestValueScanAcceptsHexString(t *testing.T) {
	g := tg.NewPoint(tg.Point{X: 1, Y: 2})
	hx := FormatHex(g)

	var out Value
	if err := out.Scan(hx); err != nil {
		t.Fatal(err)
	}
	pt, ok := out.G.AsPoint()
	if !ok || pt != (tg.Point{X: 1, Y: 2}) {
		t.Fatalf("AsPoint = %v, %v, want (1,2), true", pt, ok)
	}
}

func TestValueScanAcceptsWKTString(t *testing.T) {
	var out Value
	if err := out.Scan("POINT (7 8)"); err != nil {
		t.Fatal(err)
	}
	pt, ok := out.G.AsPoint()
	if !ok || pt != (tg.Point{X: 7, Y: 8}) {
		t.Fatalf("AsPoint = %v, %v, want (7,8), true", pt, ok)
	}
}

func TestValueScanNilClearsGeometry(t *testing.T) {
	out := Value{G: tg.NewPoint(tg.Point{X: 1, Y: 1})}
	if err := out.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if out.G.Typeof() != tg.KindUnknown {
		t.Errorf("expected Scan(nil) to clear the geometry, got %v", out.G.Typeof())
	}
}

func TestValueOfUnknownGeometryIsNil(t *testing.T) {
	var v Value
	got, err := v.Value()
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("Value() for a zero-value Value = %v, want nil", got)
	}
}
