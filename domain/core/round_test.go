package core

import "testing"

func TestRoundUnit_HalfToEven(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.5, 2},
		{3.5, 4},
		{-2.5, -2},
		{99.5, 100},
		{100.5, 100},
		{100.4999, 100},
	}
	for _, c := range cases {
		if got := RoundUnit(c.in); got != c.want {
			t.Errorf("RoundUnit(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{0.125, 2, 0.12},
		{0.135, 2, 0.14},
		{336.204, 2, 336.2},
		{2.675, 2, 2.67}, // float repr of 2.675 sits just below the midpoint
		{0.12344, 4, 0.1234},
	}
	for _, c := range cases {
		if got := RoundTo(c.in, c.places); got != c.want {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", c.in, c.places, got, c.want)
		}
	}
}
