package model

import (
	"errors"
	"testing"

	"newsvendor/domain/core"
)

func TestNewParams_DerivesCosts(t *testing.T) {
	p := NewParams(100, 20, 10, 6, 2)

	if got := p.UnderageCost(); got != 4 {
		t.Errorf("UnderageCost = %v, want 4", got)
	}
	if got := p.OverageCost(); got != 4 {
		t.Errorf("OverageCost = %v, want 4", got)
	}
	if got := p.CriticalRatio(); got != 0.5 {
		t.Errorf("CriticalRatio = %v, want 0.5", got)
	}
}

func TestParams_UpdateReplacesAllFields(t *testing.T) {
	p := NewParams(100, 20, 10, 6, 2)
	q := p.Update(200, 30, 12, 4, 2)

	if q.MeanDemand != 200 || q.DemandStdDev != 30 {
		t.Errorf("demand fields not replaced: %+v", q)
	}
	if got := q.CriticalRatio(); got != 0.8 {
		t.Errorf("CriticalRatio after update = %v, want 0.8", got)
	}
	// receiver untouched
	if p.MeanDemand != 100 || p.CriticalRatio() != 0.5 {
		t.Errorf("Update mutated the receiver: %+v", p)
	}
}

func TestParams_ResetZeroesEverything(t *testing.T) {
	p := NewParams(100, 20, 10, 6, 2).Reset()

	if p.MeanDemand != 0 || p.DemandStdDev != 0 || p.SellingPrice != 0 ||
		p.UnitCost != 0 || p.SalvageValue != 0 {
		t.Errorf("base fields not zeroed: %+v", p)
	}
	if p.UnderageCost() != 0 || p.OverageCost() != 0 || p.CriticalRatio() != 0 {
		t.Errorf("derived fields not zeroed: Cu=%v Co=%v CR=%v",
			p.UnderageCost(), p.OverageCost(), p.CriticalRatio())
	}
}

func TestParams_Describe(t *testing.T) {
	p := NewParams(100, 20, 10, 6, 2)
	d := p.Describe()

	want := map[string]float64{
		"Demand":             100,
		"Standard Deviation": 20,
		"Selling Price":      10,
		"Cost":               6,
		"Salvage Value":      2,
	}
	for k, v := range want {
		if d[k] != v {
			t.Errorf("Describe()[%q] = %v, want %v", k, d[k], v)
		}
	}
	if len(d) != len(want) {
		t.Errorf("Describe() has %d entries, want %d", len(d), len(want))
	}
}

func TestParams_Validate(t *testing.T) {
	if err := NewParams(100, 20, 10, 6, 2).Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	err := NewParams(100, -1, 10, 6, 2).Validate()
	if !errors.Is(err, core.ErrInvalidStdDev) {
		t.Errorf("negative std dev: got %v, want ErrInvalidStdDev", err)
	}

	// selling price == salvage value collapses the cost spread to zero
	err = NewParams(100, 20, 6, 6, 6).Validate()
	if !errors.Is(err, core.ErrDegenerateCosts) {
		t.Errorf("zero cost spread: got %v, want ErrDegenerateCosts", err)
	}
}

func TestParams_PassThroughEconomics(t *testing.T) {
	// Selling below cost is not rejected at construction; the critical ratio
	// just lands outside (0,1) for the solver to report.
	p := NewParams(100, 20, 5, 6, 2)
	if err := p.Validate(); err != nil {
		t.Fatalf("pass-through params rejected: %v", err)
	}
	if cr := p.CriticalRatio(); cr >= 0 {
		t.Errorf("CriticalRatio = %v, want negative for sellingPrice < unitCost", cr)
	}
}
