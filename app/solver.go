package app

import (
	"fmt"

	"newsvendor/domain/core"
	"newsvendor/domain/model"
	"newsvendor/ports"
)

// Solver derives order quantities analytically from the critical-ratio
// formula. It holds no state beyond the injected distribution backend.
type Solver struct {
	dist ports.NormalDist
}

// NewSolver creates a solver on the given distribution backend.
func NewSolver(dist ports.NormalDist) *Solver {
	return &Solver{dist: dist}
}

// OptimalQuantity inverts the demand distribution at the critical ratio and
// rounds half-to-even to whole units. Zero demand variance degenerates to the
// mean itself without touching the quantile routine.
func (s *Solver) OptimalQuantity(p model.Params) (model.QuantityPlan, error) {
	if err := p.Validate(); err != nil {
		return model.QuantityPlan{}, err
	}

	ratio := p.CriticalRatio()
	if ratio <= 0 || ratio >= 1 {
		return model.QuantityPlan{}, core.NewValidationError(core.ErrInvalidRatio, fmt.Sprintf("%v", ratio))
	}

	quantity := p.MeanDemand
	if p.DemandStdDev > 0 {
		quantity = s.dist.Quantile(p.MeanDemand, p.DemandStdDev, ratio)
	}
	quantity = core.RoundUnit(quantity)

	return model.QuantityPlan{
		OrderQuantity: quantity,
		MeanDemand:    p.MeanDemand,
		SafetyStock:   quantity - p.MeanDemand,
	}, nil
}

// quantityAtServiceLevel inverts the demand distribution at an arbitrary
// in-stock probability. Shared by the service-level evaluation entry point.
func (s *Solver) quantityAtServiceLevel(p model.Params, target float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if target <= 0 || target >= 1 {
		return 0, core.NewValidationError(core.ErrInvalidProbability,
			fmt.Sprintf("target in-stock probability %v", target))
	}

	quantity := p.MeanDemand
	if p.DemandStdDev > 0 {
		quantity = s.dist.Quantile(p.MeanDemand, p.DemandStdDev, target)
	}
	return core.RoundUnit(quantity), nil
}

// StockoutProbability is the chance that demand exceeds the given quantity,
// computed analytically from the standard normal survival function and
// rounded to 4 decimal places. Zero variance makes the z-score a division by
// zero and is rejected.
func (s *Solver) StockoutProbability(p model.Params, quantity float64) (float64, error) {
	if p.DemandStdDev <= 0 {
		return 0, core.NewValidationError(core.ErrInvalidStdDev,
			fmt.Sprintf("std dev %v leaves stockout probability undefined", p.DemandStdDev))
	}

	z := (quantity - p.MeanDemand) / p.DemandStdDev
	return core.RoundTo(s.dist.Survival(0, 1, z), 4), nil
}
