// Package dist backs the NormalDist port with gonum's distuv distributions.
package dist

import "gonum.org/v1/gonum/stat/distuv"

// Gonum implements ports.NormalDist on gonum.org/v1/gonum/stat/distuv.
type Gonum struct{}

// NewGonum creates the gonum-backed distribution provider.
func NewGonum() Gonum {
	return Gonum{}
}

// Quantile returns the inverse CDF of N(mean, stdDev) at p.
func (Gonum) Quantile(mean, stdDev, p float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stdDev}.Quantile(p)
}

// Survival returns P(X > x) for X ~ N(mean, stdDev).
func (Gonum) Survival(mean, stdDev, x float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stdDev}.Survival(x)
}
