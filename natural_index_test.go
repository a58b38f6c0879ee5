package tg

import (
	"math"
	"testing"
)

func denseRing(t *testing.T, n int, opts BuildOptions) *Ring {
	t.Helper()
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: 100 * math.Cos(a), Y: 100 * math.Sin(a)}
	}
	r, err := NewRing(pts, opts)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestBuildNaturalIndexLeafCount(t *testing.T) {
	r := denseRing(t, 100, BuildOptions{Index: IndexNatural, Spread: 8})
	if !r.HasIndex() {
		t.Fatal("expected a Natural Index")
	}
	leafLevel := r.index.levels[len(r.index.levels)-1]
	wantLeaves := (100 + 8 - 1) / 8
	if len(leafLevel) != wantLeaves {
		t.Errorf("leaf level has %d rects, want %d", len(leafLevel), wantLeaves)
	}
}

func TestSearchFindsAllIntersectingSegments(t *testing.T) {
	r := denseRing(t, 200, BuildOptions{Index: IndexNatural, Spread: 4})

	qr := Rect{Min: Point{90, -10}, Max: Point{110, 10}}
	indexed := map[int]bool{}
	r.Search(qr, func(segIdx int, seg Segment) bool {
		indexed[segIdx] = true
		return true
	})

	linear := map[int]bool{}
	r.searchLinear(qr, func(segIdx int, seg Segment) bool {
		linear[segIdx] = true
		return true
	})

	if len(indexed) != len(linear) {
		t.Fatalf("indexed search found %d segments, linear found %d", len(indexed), len(linear))
	}
	for k := range linear {
		if !indexed[k] {
			t.Errorf("indexed search missed segment %d found by linear scan", k)
		}
	}
}

func TestSearchEarlyExit(t *testing.T) {
	r := denseRing(t, 200, BuildOptions{Index: IndexNatural, Spread: 4})
	count := 0
	completed := r.Search(r.Rect(), func(segIdx int, seg Segment) bool {
		count++
		return count < 3
	})
	if completed {
		t.Errorf("expected Search to report early exit")
	}
	if count != 3 {
		t.Errorf("expected exactly 3 iterations before stopping, got %d", count)
	}
}

func TestIndexPIPMatchesSequential(t *testing.T) {
	r := denseRing(t, 200, BuildOptions{Index: IndexNatural, Spread: 4})
	pts := []Point{{0, 0}, {150, 150}, {99, 0}, {0, 99}}
	for _, p := range pts {
		gotHit, gotOnEdge, _ := r.indexPIP(p, true)
		wantHit, wantOnEdge, _ := sequentialPIP(r, p, true)
		if gotHit != wantHit || gotOnEdge != wantOnEdge {
			t.Errorf("indexPIP(%v) = (%v,%v), sequentialPIP = (%v,%v)", p, gotHit, gotOnEdge, wantHit, wantOnEdge)
		}
	}
}
