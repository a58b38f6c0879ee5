package tg

import "testing"

func TestNewPointGeometry(t *testing.T) {
	g := NewPoint(Point{1, 2})
	if g.Typeof() != KindPoint {
		t.Fatalf("Typeof = %v, want KindPoint", g.Typeof())
	}
	pt, ok := g.AsPoint()
	if !ok || pt != (Point{1, 2}) {
		t.Fatalf("AsPoint = %v, %v, want (1,2), true", pt, ok)
	}
}

func TestNewEmptyGeometries(t *testing.T) {
	cases := []struct {
		name string
		g    Geometry
		kind Kind
	}{
		{"point", NewEmptyPoint(), KindPoint},
		{"linestring", NewEmptyLineString(), KindLineString},
		{"polygon", NewEmptyPolygon(), KindPolygon},
		{"multipoint", NewMultiPoint(nil), KindMultiPoint},
		{"multilinestring", NewMultiLineString(nil), KindMultiLineString},
		{"multipolygon", NewMultiPolygon(nil), KindMultiPolygon},
		{"geometrycollection", NewGeometryCollection(nil), KindGeometryCollection},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.g.Typeof() != c.kind {
				t.Errorf("Typeof = %v, want %v", c.g.Typeof(), c.kind)
			}
			if !c.g.IsEmpty() {
				t.Errorf("expected IsEmpty() for empty %s", c.name)
			}
		})
	}
}

func TestLineStringGeometryRoundTrip(t *testing.T) {
	g, err := NewLineStringGeometry([]Point{{0, 0}, {1, 1}, {2, 0}}, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	l, ok := g.AsLine()
	if !ok {
		t.Fatal("expected AsLine to succeed")
	}
	if l.NumPoints() != 3 {
		t.Errorf("NumPoints = %d, want 3", l.NumPoints())
	}
}

func TestLineStringGeometryDegenerateReturnsPoisonGeometry(t *testing.T) {
	g, err := NewLineStringGeometry([]Point{{0, 0}}, BuildOptions{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !g.IsError() {
		t.Errorf("expected a poison geometry on construction failure")
	}
}

func TestPolygonGeometryWithHoles(t *testing.T) {
	ext := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := []Point{{3, 3}, {7, 3}, {7, 7}, {3, 7}}
	g, err := NewPolygonGeometry(ext, [][]Point{hole}, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	poly, ok := g.AsPolygon()
	if !ok {
		t.Fatal("expected AsPolygon to succeed")
	}
	if poly.NumHoles() != 1 {
		t.Errorf("NumHoles = %d, want 1", poly.NumHoles())
	}
}

func TestPolygonGeometryNoHolesUsesRingBase(t *testing.T) {
	ext := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	g, err := NewPolygonGeometry(ext, nil, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if g.base != baseRing {
		t.Errorf("expected no-holes polygon to use the naked ring base, got %v", g.base)
	}
	poly, ok := g.AsPolygon()
	if !ok || poly.NumHoles() != 0 {
		t.Errorf("AsPolygon fallback for baseRing failed: %v %v", poly, ok)
	}
}

func TestWithZMSetsFlags(t *testing.T) {
	g := NewPoint(Point{1, 2}).WithZM([]float64{3}, nil)
	if !g.HasZ() {
		t.Errorf("expected HasZ after WithZM(z, nil)")
	}
	if g.HasM() {
		t.Errorf("expected !HasM when m is nil")
	}
	if g.Dims() != 3 {
		t.Errorf("Dims = %d, want 3", g.Dims())
	}
}

func TestAsFeatureAndFeatureCollectionFlags(t *testing.T) {
	g := NewPoint(Point{0, 0}).AsFeature()
	if !g.IsFeature() {
		t.Errorf("expected IsFeature after AsFeature")
	}
	fc := NewGeometryCollection(nil).AsFeatureCollection()
	if !fc.IsFeatureCollection() {
		t.Errorf("expected IsFeatureCollection after AsFeatureCollection")
	}
}

func TestExtraJSONRoundTrip(t *testing.T) {
	g := NewPoint(Point{0, 0}).WithExtraJSON(`{"id":1}`)
	if g.ExtraJSON() != `{"id":1}` {
		t.Errorf("ExtraJSON = %q, want %q", g.ExtraJSON(), `{"id":1}`)
	}
}

func TestGeometryRectByKind(t *testing.T) {
	pt := NewPoint(Point{3, 4})
	if r := pt.Rect(); r.Min != (Point{3, 4}) || r.Max != (Point{3, 4}) {
		t.Errorf("point Rect = %v, want degenerate at (3,4)", r)
	}

	line, _ := NewLineStringGeometry([]Point{{0, 0}, {10, 10}}, BuildOptions{})
	if r := line.Rect(); r.Min != (Point{0, 0}) || r.Max != (Point{10, 10}) {
		t.Errorf("line Rect = %v, want (0,0)-(10,10)", r)
	}
}
