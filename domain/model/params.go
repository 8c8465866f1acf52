package model

import (
	"fmt"

	"newsvendor/domain/core"
)

// Params holds the demand distribution and unit economics for a single-period
// stocking decision. It is an immutable value record: construction and Update
// both derive the marginal costs and critical ratio, so a Params can never
// carry stale derived state.
//
// No economic-sanity validation happens at construction. Callers may supply
// values with sellingPrice < unitCost or salvageValue > unitCost; the derived
// critical ratio then falls outside (0,1) and the solver reports that when an
// inversion is requested.
type Params struct {
	MeanDemand   float64 `json:"mean_demand"`
	DemandStdDev float64 `json:"demand_std_dev"`
	SellingPrice float64 `json:"selling_price"`
	UnitCost     float64 `json:"unit_cost"`
	SalvageValue float64 `json:"salvage_value"`

	underageCost  float64
	overageCost   float64
	criticalRatio float64
}

// NewParams constructs a parameter record and derives the underage cost,
// overage cost and critical ratio.
func NewParams(meanDemand, demandStdDev, sellingPrice, unitCost, salvageValue float64) Params {
	p := Params{
		MeanDemand:   meanDemand,
		DemandStdDev: demandStdDev,
		SellingPrice: sellingPrice,
		UnitCost:     unitCost,
		SalvageValue: salvageValue,
	}
	p.derive()
	return p
}

func (p *Params) derive() {
	p.underageCost = p.SellingPrice - p.UnitCost
	p.overageCost = p.UnitCost - p.SalvageValue
	if spread := p.underageCost + p.overageCost; spread != 0 {
		p.criticalRatio = p.underageCost / spread
	} else {
		p.criticalRatio = 0
	}
}

// Update returns a new record with all five base parameters replaced and the
// derived values recomputed. The receiver is left untouched.
func (p Params) Update(meanDemand, demandStdDev, sellingPrice, unitCost, salvageValue float64) Params {
	return NewParams(meanDemand, demandStdDev, sellingPrice, unitCost, salvageValue)
}

// Reset returns a record with every base and derived field zeroed, including
// the salvage value used by revenue calculations.
func (p Params) Reset() Params {
	return Params{}
}

// UnderageCost is the profit lost per unit of unmet demand (Cu).
func (p Params) UnderageCost() float64 { return p.underageCost }

// OverageCost is the cost incurred per unsold unit (Co).
func (p Params) OverageCost() float64 { return p.overageCost }

// CriticalRatio is Cu/(Cu+Co), the service level that maximizes expected
// profit. Zero when Cu+Co is zero; see Validate.
func (p Params) CriticalRatio() float64 { return p.criticalRatio }

// Describe returns the base parameters as a labeled mapping for display.
func (p Params) Describe() map[string]float64 {
	return map[string]float64{
		"Demand":             p.MeanDemand,
		"Standard Deviation": p.DemandStdDev,
		"Selling Price":      p.SellingPrice,
		"Cost":               p.UnitCost,
		"Salvage Value":      p.SalvageValue,
	}
}

// Validate reports the parameter conditions under which no evaluation is
// meaningful: a negative standard deviation, or a zero cost spread that makes
// the critical ratio a division by zero.
func (p Params) Validate() error {
	if p.DemandStdDev < 0 {
		return core.NewValidationError(core.ErrInvalidStdDev, fmt.Sprintf("%v", p.DemandStdDev))
	}
	if p.underageCost+p.overageCost == 0 {
		return core.NewValidationError(core.ErrDegenerateCosts,
			fmt.Sprintf("Cu=%v Co=%v", p.underageCost, p.overageCost))
	}
	return nil
}
