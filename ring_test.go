package tg

import (
	"errors"
	"testing"
)

func square() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func TestNewRingBasic(t *testing.T) {
	r, err := NewRing(square(), BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumPoints() != 4 {
		t.Errorf("NumPoints = %d, want 4", r.NumPoints())
	}
	if r.NumSegs() != 4 {
		t.Errorf("NumSegs = %d, want 4", r.NumSegs())
	}
	if !r.Closed() {
		t.Errorf("expected closed ring")
	}
	if r.Area() != 100 {
		t.Errorf("Area = %v, want 100", r.Area())
	}
	if !r.Convex() {
		t.Errorf("expected square to be convex")
	}
}

func TestNewRingExplicitClosurePointDeduplicated(t *testing.T) {
	pts := append(square(), square()[0])
	r, err := NewRing(pts, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumPoints() != 4 {
		t.Errorf("NumPoints = %d, want 4 after closure dedup", r.NumPoints())
	}
}

func TestNewRingDegenerate(t *testing.T) {
	_, err := NewRing([]Point{{0, 0}, {1, 1}}, BuildOptions{})
	if !errors.Is(err, ErrDegenerateRing) {
		t.Fatalf("expected ErrDegenerateRing, got %v", err)
	}
}

func TestNewLineStringDegenerate(t *testing.T) {
	_, err := NewLineString([]Point{{0, 0}}, BuildOptions{})
	if !errors.Is(err, ErrDegenerateRing) {
		t.Fatalf("expected ErrDegenerateRing, got %v", err)
	}
}

func TestNewLineStringOpen(t *testing.T) {
	l, err := NewLineString([]Point{{0, 0}, {1, 0}, {2, 0}}, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Closed() {
		t.Errorf("expected open line")
	}
	if l.NumSegs() != 2 {
		t.Errorf("NumSegs = %d, want 2", l.NumSegs())
	}
}

func TestRingWindingDirection(t *testing.T) {
	cw, err := NewRing(square(), BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	rev := make([]Point, len(square()))
	sq := square()
	for i := range sq {
		rev[i] = sq[len(sq)-1-i]
	}
	ccw, err := NewRing(rev, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if cw.Clockwise() == ccw.Clockwise() {
		t.Errorf("expected opposite winding for reversed ring")
	}
}

func TestBuildRingWithIndexAboveThreshold(t *testing.T) {
	// spread default 16; 2*spread segments forces an index.
	pts := make([]Point, 40)
	for i := range pts {
		angle := float64(i) / float64(len(pts))
		pts[i] = Point{X: angle, Y: angle * angle}
	}
	r, err := NewRing(pts, BuildOptions{Index: IndexNatural})
	if err != nil {
		t.Fatal(err)
	}
	if !r.HasIndex() {
		t.Errorf("expected Natural Index to be built above the 2*spread threshold")
	}
}

func TestBuildRingYStripesFallsBackOnOpenLine(t *testing.T) {
	pts := make([]Point, 40)
	for i := range pts {
		pts[i] = Point{X: float64(i), Y: float64(i % 3)}
	}
	l, err := NewLineString(pts, BuildOptions{Index: IndexYStripes})
	if err != nil {
		t.Fatal(err)
	}
	if l.HasYStripes() {
		t.Errorf("Y-Stripes should never be built for an open line")
	}
	if !l.HasIndex() {
		t.Errorf("expected fallback to Natural Index")
	}
}

func TestRingCloneSharesRefcountCopyDoesNot(t *testing.T) {
	r, _ := NewRing(square(), BuildOptions{})
	clone := r.Clone()
	if clone.RefCount() != 2 {
		t.Errorf("RefCount after Clone = %d, want 2", clone.RefCount())
	}
	cp := r.Copy()
	if cp.RefCount() != 1 {
		t.Errorf("RefCount of a Copy = %d, want 1 (independent)", cp.RefCount())
	}
	clone.Release()
	if r.RefCount() != 1 {
		t.Errorf("RefCount after Release = %d, want 1", r.RefCount())
	}
}
