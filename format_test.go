package tg

import "testing"

func TestTrimFloatNoTrailingZeros(t *testing.T) {
	cases := map[float64]string{
		1:    "1",
		1.5:  "1.5",
		-2.0: "-2",
		0:    "0",
	}
	for in, want := range cases {
		if got := trimFloat(in); got != want {
			t.Errorf("trimFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
