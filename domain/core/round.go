package core

import "math"

// RoundUnit rounds to the nearest whole unit using round-half-to-even
// semantics, matching the rounding applied to simulated demand draws.
func RoundUnit(x float64) float64 {
	return math.RoundToEven(x)
}

// RoundTo rounds x to the given number of decimal places, half-to-even.
// Monetary values use 2 places, probabilities and fill rates 4.
func RoundTo(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.RoundToEven(x*pow) / pow
}
