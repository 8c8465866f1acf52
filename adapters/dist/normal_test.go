package dist

import (
	"math"
	"testing"
)

const tol = 1e-6

func TestGonum_QuantileReferenceValues(t *testing.T) {
	d := NewGonum()

	cases := []struct {
		mean, sd, p float64
		want        float64
	}{
		{0, 1, 0.5, 0},
		{0, 1, 0.975, 1.959964},
		{100, 20, 0.5, 100},
		{100, 20, 0.975, 139.199280},
		{100, 20, 0.9, 125.631031},
	}
	for _, c := range cases {
		got := d.Quantile(c.mean, c.sd, c.p)
		if math.Abs(got-c.want) > tol {
			t.Errorf("Quantile(%v, %v, %v) = %v, want %v", c.mean, c.sd, c.p, got, c.want)
		}
	}
}

func TestGonum_SurvivalReferenceValues(t *testing.T) {
	d := NewGonum()

	cases := []struct {
		mean, sd, x float64
		want        float64
	}{
		{0, 1, 0, 0.5},
		{0, 1, 1.959964, 0.025},
		{100, 20, 125.631031, 0.1},
	}
	for _, c := range cases {
		got := d.Survival(c.mean, c.sd, c.x)
		if math.Abs(got-c.want) > tol {
			t.Errorf("Survival(%v, %v, %v) = %v, want %v", c.mean, c.sd, c.x, got, c.want)
		}
	}
}

func TestGonum_QuantileInvertsSurvival(t *testing.T) {
	d := NewGonum()

	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		x := d.Quantile(50, 12, p)
		if got := d.Survival(50, 12, x); math.Abs(got-(1-p)) > tol {
			t.Errorf("Survival(Quantile(%v)) = %v, want %v", p, got, 1-p)
		}
	}
}
