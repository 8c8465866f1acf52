package app

import (
	"context"
	"fmt"
	"math"

	"newsvendor/domain/core"
	"newsvendor/domain/model"
	"newsvendor/ports"

	"github.com/montanaflynn/stats"
)

// Default simulation shape. One simulation of a million trials keeps the
// standard error of the profit estimate well under a currency unit for
// typical demand scales; callers trade precision for throughput by tuning
// both values.
const (
	DefaultSimulations = 1
	DefaultTrials      = 1_000_000
)

// SimConfig controls the Monte Carlo draw shape and seeding. The zero value
// asks for the defaults; Seed zero leaves the sampler nondeterministic.
type SimConfig struct {
	Simulations int   `json:"simulations"`
	Trials      int   `json:"trials"`
	Seed        int64 `json:"seed"`
}

// withDefaults fills unset shape fields. Negative values are left in place
// for Validate to reject.
func (c SimConfig) withDefaults() SimConfig {
	if c.Simulations == 0 {
		c.Simulations = DefaultSimulations
	}
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}
	return c
}

// Validate rejects non-positive draw shapes.
func (c SimConfig) Validate() error {
	if c.Simulations < 1 {
		return core.NewValidationError(core.ErrInvalidSimConfig, fmt.Sprintf("simulations %d", c.Simulations))
	}
	if c.Trials < 1 {
		return core.NewValidationError(core.ErrInvalidSimConfig, fmt.Sprintf("trials %d", c.Trials))
	}
	return nil
}

// Evaluator estimates the downstream performance of an order quantity by
// simulating demand. The three entry points differ only in how the quantity
// is obtained; they share one simulate-and-aggregate routine.
type Evaluator struct {
	solver  *Solver
	sampler ports.DemandSampler
}

// NewEvaluator creates an evaluator on the given solver and demand sampler.
func NewEvaluator(solver *Solver, sampler ports.DemandSampler) *Evaluator {
	return &Evaluator{solver: solver, sampler: sampler}
}

// clampUnit pins a simulated fill-rate estimate to [0,1]. The true rate
// cannot leave the unit interval; the sample mean of units sold can drift
// past mean demand by sampling noise at large quantities.
func clampUnit(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}

// trialAggregates carries the unrounded per-trial aggregates of one
// simulation run. The evaluator and the sweep shape these into their own
// report rows.
type trialAggregates struct {
	meanLostSales float64
	meanUnitsSold float64
	meanLeftover  float64
	meanProfit    float64
	maxProfit     float64
	minProfit     float64
}

// simulate draws simulations*trials demand realizations, applies the
// single-period economics elementwise and aggregates across all draws.
// Cost of goods is Q*unitCost once; it does not vary per trial.
func (e *Evaluator) simulate(ctx context.Context, p model.Params, quantity float64, cfg SimConfig) (trialAggregates, error) {
	draws := cfg.Simulations * cfg.Trials
	demand, err := e.sampler.NormalDraws(ctx, p.MeanDemand, p.DemandStdDev, draws, cfg.Seed)
	if err != nil {
		return trialAggregates{}, core.NewSimulationError("demand draw", err)
	}

	lostSales := make([]float64, draws)
	unitsSold := make([]float64, draws)
	leftover := make([]float64, draws)
	profit := make([]float64, draws)

	cogs := quantity * p.UnitCost
	for i, raw := range demand {
		d := core.RoundUnit(raw)

		left := math.Max(quantity-d, 0)
		lost := math.Max(d-quantity, 0)
		sold := math.Min(d, quantity)

		leftover[i] = left
		lostSales[i] = lost
		unitsSold[i] = sold
		profit[i] = sold*p.SellingPrice + left*p.SalvageValue - cogs
	}

	agg := trialAggregates{}
	if agg.meanLostSales, err = stats.Mean(lostSales); err != nil {
		return trialAggregates{}, core.NewSimulationError("lost sales aggregation", err)
	}
	if agg.meanUnitsSold, err = stats.Mean(unitsSold); err != nil {
		return trialAggregates{}, core.NewSimulationError("units sold aggregation", err)
	}
	if agg.meanLeftover, err = stats.Mean(leftover); err != nil {
		return trialAggregates{}, core.NewSimulationError("leftover aggregation", err)
	}
	if agg.meanProfit, err = stats.Mean(profit); err != nil {
		return trialAggregates{}, core.NewSimulationError("profit aggregation", err)
	}
	if agg.maxProfit, err = stats.Max(profit); err != nil {
		return trialAggregates{}, core.NewSimulationError("profit aggregation", err)
	}
	if agg.minProfit, err = stats.Min(profit); err != nil {
		return trialAggregates{}, core.NewSimulationError("profit aggregation", err)
	}
	return agg, nil
}

// evaluate runs the shared routine at one quantity and shapes the rounded
// report. Stockout probability is analytic, not estimated from the draws.
func (e *Evaluator) evaluate(ctx context.Context, p model.Params, quantity float64, cfg SimConfig) (model.Report, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return model.Report{}, err
	}

	agg, err := e.simulate(ctx, p, quantity, cfg)
	if err != nil {
		return model.Report{}, err
	}

	stockout, err := e.solver.StockoutProbability(p, quantity)
	if err != nil {
		return model.Report{}, err
	}

	fillRate := clampUnit(agg.meanUnitsSold / p.MeanDemand)

	return model.Report{
		OrderQuantity:             quantity,
		ExpectedProfit:            core.RoundTo(agg.meanProfit, 2),
		ExpectedSalesQuantity:     core.RoundTo(agg.meanUnitsSold, 0),
		ExpectedLostSalesQuantity: core.RoundTo(agg.meanLostSales, 0),
		ExpectedLostSalesRevenue:  core.RoundTo(agg.meanLostSales*p.SellingPrice, 2),
		ExpectedLeftoverQuantity:  core.RoundTo(agg.meanLeftover, 0),
		FillRate:                  core.RoundTo(fillRate, 4),
		StockoutProbability:       stockout,
	}, nil
}

// EvaluateAtOptimalQuantity evaluates at the critical-ratio quantity.
func (e *Evaluator) EvaluateAtOptimalQuantity(ctx context.Context, p model.Params, cfg SimConfig) (model.Report, error) {
	plan, err := e.solver.OptimalQuantity(p)
	if err != nil {
		return model.Report{}, err
	}
	return e.evaluate(ctx, p, plan.OrderQuantity, cfg)
}

// EvaluateAtServiceLevel evaluates at the quantity achieving the target
// in-stock probability, echoing the target in the report.
func (e *Evaluator) EvaluateAtServiceLevel(ctx context.Context, p model.Params, target float64, cfg SimConfig) (model.Report, error) {
	quantity, err := e.solver.quantityAtServiceLevel(p, target)
	if err != nil {
		return model.Report{}, err
	}
	report, err := e.evaluate(ctx, p, quantity, cfg)
	if err != nil {
		return model.Report{}, err
	}
	report.TargetInStockProbability = target
	return report, nil
}

// EvaluateAtQuantity evaluates a caller-chosen quantity. Negative quantities
// are rejected rather than producing degenerate metrics.
func (e *Evaluator) EvaluateAtQuantity(ctx context.Context, p model.Params, quantity float64, cfg SimConfig) (model.Report, error) {
	if quantity < 0 {
		return model.Report{}, core.NewValidationError(core.ErrNegativeQuantity, fmt.Sprintf("%v", quantity))
	}
	if err := p.Validate(); err != nil {
		return model.Report{}, err
	}
	return e.evaluate(ctx, p, quantity, cfg)
}
