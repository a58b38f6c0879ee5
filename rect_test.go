package tg

import "testing"

func TestRectUnion(t *testing.T) {
	a := Rect{Min: Point{0, 0}, Max: Point{1, 1}}
	b := Rect{Min: Point{2, 2}, Max: Point{3, 3}}
	got := a.Union(b)
	want := Rect{Min: Point{0, 0}, Max: Point{3, 3}}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name   string
		a, b   Rect
		intersects bool
	}{
		{"overlap", Rect{Point{0, 0}, Point{2, 2}}, Rect{Point{1, 1}, Point{3, 3}}, true},
		{"touching-edge", Rect{Point{0, 0}, Point{1, 1}}, Rect{Point{1, 0}, Point{2, 1}}, true},
		{"disjoint", Rect{Point{0, 0}, Point{1, 1}}, Rect{Point{2, 2}, Point{3, 3}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.intersects {
				t.Errorf("Intersects = %v, want %v", got, c.intersects)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	inner := Rect{Min: Point{1, 1}, Max: Point{2, 2}}
	if !outer.ContainsRect(inner) {
		t.Errorf("expected outer to contain inner")
	}
	if inner.ContainsRect(outer) {
		t.Errorf("expected inner to not contain outer")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{Min: Point{0, 0}, Max: Point{4, 2}}
	if got, want := r.Center(), (Point{2, 1}); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestFloat32RectRoundTripNeverShrinks(t *testing.T) {
	r := Rect{Min: Point{1.0000001, -2.0000001}, Max: Point{3.0000001, 4.0000001}}
	fr := toFloat32Rect(r)
	widened := fr.toRect()
	if !widened.ContainsRect(r) {
		t.Errorf("float32 round-trip shrank the rect: got %v from %v", widened, r)
	}
}
