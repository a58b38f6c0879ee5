package tg

import "testing"

func TestCollinear(t *testing.T) {
	cases := []struct {
		name           string
		p1, p2, p3     Point
		want           bool
	}{
		{"on-x-axis", Point{0, 0}, Point{1, 0}, Point{2, 0}, true},
		{"on-diagonal", Point{0, 0}, Point{1, 1}, Point{2, 2}, true},
		{"not-collinear", Point{0, 0}, Point{1, 1}, Point{2, 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := collinear(c.p1, c.p2, c.p3); got != c.want {
				t.Errorf("collinear(%v,%v,%v) = %v, want %v", c.p1, c.p2, c.p3, got, c.want)
			}
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name   string
		s1, s2 Segment
		want   bool
	}{
		{
			"crossing-x",
			Segment{Point{0, 0}, Point{2, 2}},
			Segment{Point{0, 2}, Point{2, 0}},
			true,
		},
		{
			"parallel-no-touch",
			Segment{Point{0, 0}, Point{1, 0}},
			Segment{Point{0, 1}, Point{1, 1}},
			false,
		},
		{
			"shared-endpoint",
			Segment{Point{0, 0}, Point{1, 1}},
			Segment{Point{1, 1}, Point{2, 0}},
			true,
		},
		{
			"collinear-overlap",
			Segment{Point{0, 0}, Point{2, 0}},
			Segment{Point{1, 0}, Point{3, 0}},
			true,
		},
		{
			"collinear-disjoint",
			Segment{Point{0, 0}, Point{1, 0}},
			Segment{Point{2, 0}, Point{3, 0}},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := segmentsIntersect(c.s1, c.s2); got != c.want {
				t.Errorf("segmentsIntersect = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 2}}
	s2 := Segment{Point{0, 2}, Point{2, 0}}
	p, ok := segmentIntersection(s1, s2)
	if !ok {
		t.Fatal("expected intersection")
	}
	if want := (Point{1, 1}); !p.Equal(want) {
		t.Errorf("segmentIntersection = %v, want %v", p, want)
	}
}

func TestRaycast(t *testing.T) {
	seg := Segment{Point{0, 0}, Point{0, 10}}
	cases := []struct {
		name string
		p    Point
		want raycastResult
	}{
		{"left-of-vertical-below-top", Point{-1, 5}, rcIn},
		{"right-of-vertical", Point{1, 5}, rcOut},
		{"on-segment", Point{0, 5}, rcOn},
		{"above-segment-y-range", Point{-1, 20}, rcOut},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := raycast(seg, c.p); got != c.want {
				t.Errorf("raycast(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestRaycastSharedVertexCountsOnce(t *testing.T) {
	// Two edges meeting at (1,1): a ray from (0,1) heading +X must cross
	// the shared vertex exactly once in total across both edges.
	e1 := Segment{Point{1, 0}, Point{1, 1}}
	e2 := Segment{Point{1, 1}, Point{1, 2}}
	p := Point{0, 1}
	crossings := 0
	for _, seg := range []Segment{e1, e2} {
		if raycast(seg, p) == rcIn {
			crossings++
		}
	}
	if crossings != 1 {
		t.Errorf("expected exactly one crossing at shared vertex, got %d", crossings)
	}
}
