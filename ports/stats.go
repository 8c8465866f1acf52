package ports

// NormalDist exposes the normal-distribution statistics the solver and
// evaluator rely on, so the numeric backend is swappable and independently
// testable against reference values.
type NormalDist interface {
	// Quantile returns the value at cumulative probability p (inverse CDF).
	// p must lie in (0,1); callers validate before invoking.
	Quantile(mean, stdDev, p float64) float64

	// Survival returns P(X > x), i.e. 1 - CDF(x).
	Survival(mean, stdDev, x float64) float64
}
