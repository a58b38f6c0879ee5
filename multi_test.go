package tg

import "testing"

func manyPoints(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: float64(i), Y: float64(i)}
	}
	return pts
}

func TestNewMultiPointBelowIndexThreshold(t *testing.T) {
	g := NewMultiPoint(manyPoints(4))
	if g.Typeof() != KindMultiPoint {
		t.Fatalf("Typeof = %v, want KindMultiPoint", g.Typeof())
	}
	if g.NumPoints() != 4 {
		t.Fatalf("NumPoints = %d, want 4", g.NumPoints())
	}
	if g.multi.index != nil {
		t.Errorf("expected no index below the 2*multiSpread threshold")
	}
}

func TestNewMultiPointAboveIndexThreshold(t *testing.T) {
	g := NewMultiPoint(manyPoints(2 * multiSpread))
	if g.multi.index == nil {
		t.Fatal("expected an index above the 2*multiSpread threshold")
	}
	if len(g.multi.hilbertOrder) != 2*multiSpread {
		t.Errorf("hilbertOrder length = %d, want %d", len(g.multi.hilbertOrder), 2*multiSpread)
	}
}

func TestMultiEmptyHasEmptyFlag(t *testing.T) {
	g := NewMultiPoint(nil)
	if !g.IsEmpty() {
		t.Errorf("expected empty MultiPoint to report IsEmpty")
	}
	if g.NumPoints() != 0 {
		t.Errorf("NumPoints = %d, want 0", g.NumPoints())
	}
}

func TestMultiSearchIndexedMatchesLinear(t *testing.T) {
	pts := manyPoints(2 * multiSpread)
	g := NewMultiPoint(pts)
	qr := Rect{Min: Point{10, 10}, Max: Point{20, 20}}

	var indexed []int
	g.multi.Search(qr, func(childIdx int, child Geometry) bool {
		indexed = append(indexed, childIdx)
		return true
	})

	var linear []int
	for i, p := range pts {
		if qr.ContainsPoint(p) {
			linear = append(linear, i)
		}
	}

	if len(indexed) != len(linear) {
		t.Fatalf("indexed search found %d children, linear found %d", len(indexed), len(linear))
	}
	seen := map[int]bool{}
	for _, i := range indexed {
		seen[i] = true
	}
	for _, i := range linear {
		if !seen[i] {
			t.Errorf("indexed search missed child %d", i)
		}
	}
}

func TestMultiCloneSharesCopyDoesNot(t *testing.T) {
	g := NewMultiPoint(manyPoints(4))
	m := g.multi
	clone := m.Clone()
	if clone.rc.count() != 2 {
		t.Errorf("RefCount after Clone = %d, want 2", clone.rc.count())
	}
	cp := m.Copy()
	if cp.rc.count() != 1 {
		t.Errorf("RefCount of Copy = %d, want 1", cp.rc.count())
	}
}

func TestNewGeometryCollectionHeterogeneous(t *testing.T) {
	pt := NewPoint(Point{0, 0})
	line, err := NewLineStringGeometry([]Point{{0, 0}, {1, 1}}, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGeometryCollection([]Geometry{pt, line})
	if g.NumGeometries() != 2 {
		t.Fatalf("NumGeometries = %d, want 2", g.NumGeometries())
	}
	if g.GeometryAt(0).Typeof() != KindPoint {
		t.Errorf("expected first child to be a Point")
	}
	if g.GeometryAt(1).Typeof() != KindLineString {
		t.Errorf("expected second child to be a LineString")
	}
}
