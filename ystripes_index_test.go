package tg

import (
	"math"
	"testing"
)

func spikyStarRing(t *testing.T, points int) *Ring {
	t.Helper()
	pts := make([]Point, points)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(points)
		radius := 10.0
		if i%2 == 1 {
			radius = 1.0
		}
		pts[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	r, err := NewRing(pts, BuildOptions{Index: IndexYStripes})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestBuildYStripesMinimumStripeCount(t *testing.T) {
	r := spikyStarRing(t, 80)
	if !r.HasYStripes() {
		t.Fatal("expected a Y-Stripes index for a closed, spiky ring")
	}
	if r.ystripes.nstripes < 32 {
		t.Errorf("nstripes = %d, want >= 32", r.ystripes.nstripes)
	}
}

func TestYStripesPIPMatchesSequential(t *testing.T) {
	r := spikyStarRing(t, 80)
	pts := []Point{{0, 0}, {50, 50}, {5, 0}, {0, 5}}
	for _, p := range pts {
		gotHit, gotOnEdge, _ := r.ystripes.pip(r, p, true)
		wantHit, wantOnEdge, _ := sequentialPIP(r, p, true)
		if gotHit != wantHit || gotOnEdge != wantOnEdge {
			t.Errorf("ystripes pip(%v) = (%v,%v), sequential = (%v,%v)", p, gotHit, gotOnEdge, wantHit, wantOnEdge)
		}
	}
}

func TestStripeOfClampsToRange(t *testing.T) {
	idx := &yStripesIndex{minY: 0, maxY: 10, nstripes: 10}
	if got := idx.stripeOf(-5); got != 0 {
		t.Errorf("stripeOf(below range) = %d, want 0", got)
	}
	if got := idx.stripeOf(15); got != 9 {
		t.Errorf("stripeOf(above range) = %d, want 9", got)
	}
}

func TestPolsbyPopperCircleNearOne(t *testing.T) {
	const n = 360
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: 10 * math.Cos(a), Y: 10 * math.Sin(a)}
	}
	r, err := NewRing(pts, BuildOptions{Index: IndexNone})
	if err != nil {
		t.Fatal(err)
	}
	score := polsbyPopper(r)
	if score < 0.95 || score > 1.01 {
		t.Errorf("polsbyPopper(near-circle) = %v, want close to 1", score)
	}
}
