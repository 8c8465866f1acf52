// Package sampler provides the seeded normal demand source used by the
// Monte Carlo evaluator.
package sampler

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"newsvendor/domain/core"
)

// Seeded draws independent normal variates from a math/rand stream. Each call
// builds its own stream, so concurrent callers never contend on shared RNG
// state; a non-zero seed makes the draws deterministic.
type Seeded struct{}

// NewSeeded creates the default demand sampler.
func NewSeeded() *Seeded {
	return &Seeded{}
}

// NormalDraws returns n independent draws from N(mean, stdDev). Seed zero
// falls back to wall-clock seeding, so results then vary run to run.
func (s *Seeded) NormalDraws(ctx context.Context, mean, stdDev float64, n int, seed int64) ([]float64, error) {
	if stdDev < 0 {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidStdDev, stdDev)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: draw count %d", core.ErrInvalidSimConfig, n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	draws := make([]float64, n)
	for i := range draws {
		draws[i] = mean + stdDev*rng.NormFloat64()
	}
	return draws, nil
}
