package tg

import "testing"

func TestPoisonGeometry(t *testing.T) {
	_, err := NewRing([]Point{{0, 0}, {1, 1}}, BuildOptions{})
	g := poisonGeometry(err)
	if !g.IsError() {
		t.Fatal("expected poison geometry to report IsError")
	}
	if g.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestErrorOnNonErrorGeometry(t *testing.T) {
	g := NewPoint(Point{1, 2})
	if g.IsError() {
		t.Fatal("expected a normal geometry to not be an error")
	}
	if g.Error() != "" {
		t.Errorf("Error() = %q, want empty", g.Error())
	}
}

func TestErrInvalidGeometryMessage(t *testing.T) {
	err := &ErrInvalidGeometry{Kind: KindPolygon, Reason: "ring not closed"}
	want := "tg: invalid Polygon geometry: ring not closed"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrCoordinateRangeMessage(t *testing.T) {
	err := &ErrCoordinateRange{X: 200, Y: -100}
	if got := err.Error(); got == "" {
		t.Error("expected non-empty message")
	}
}
