package ports

import "context"

// DemandSampler produces independent normal demand draws for simulation.
//
// A non-zero seed must make the draws deterministic, so evaluations are
// reproducible in tests and across runs. Seed zero leaves seeding to the
// implementation (results then vary run to run).
type DemandSampler interface {
	NormalDraws(ctx context.Context, mean, stdDev float64, n int, seed int64) ([]float64, error)
}
