package model

// QuantityPlan is the analytical solver's output: the profit-maximizing order
// quantity and the safety stock it implies over average demand.
type QuantityPlan struct {
	OrderQuantity float64 `json:"order_quantity"`
	MeanDemand    float64 `json:"mean_demand"`
	SafetyStock   float64 `json:"safety_stock"`
}

// Labels returns the plan as a labeled mapping for display.
func (q QuantityPlan) Labels() map[string]float64 {
	return map[string]float64{
		"Optimal Quantity": q.OrderQuantity,
		"Average Demand":   q.MeanDemand,
		"Safety Stock":     q.SafetyStock,
	}
}

// Report holds the aggregated metrics of one Monte Carlo evaluation at a
// single order quantity. Monetary fields are rounded to 2 decimal places,
// quantities to whole units, fill rate and stockout probability to 4.
// Reports are ephemeral: computed fresh per call, never cached.
type Report struct {
	OrderQuantity float64 `json:"order_quantity"`

	// TargetInStockProbability echoes the service level the quantity was
	// derived from; zero for the optimal and direct-quantity entry points.
	TargetInStockProbability float64 `json:"target_in_stock_probability,omitempty"`

	ExpectedProfit            float64 `json:"expected_profit"`
	ExpectedSalesQuantity     float64 `json:"expected_sales_quantity"`
	ExpectedLostSalesQuantity float64 `json:"expected_lost_sales_quantity"`
	ExpectedLostSalesRevenue  float64 `json:"expected_lost_sales_revenue"`
	ExpectedLeftoverQuantity  float64 `json:"expected_leftover_quantity"`
	FillRate                  float64 `json:"fill_rate"`
	StockoutProbability       float64 `json:"stockout_probability"`
}

// Labels returns the report as a labeled mapping for display.
func (r Report) Labels() map[string]float64 {
	labels := map[string]float64{
		"Order Quantity":               r.OrderQuantity,
		"Expected Profit":              r.ExpectedProfit,
		"Expected Sales Quantity":      r.ExpectedSalesQuantity,
		"Expected Lost Sales Quantity": r.ExpectedLostSalesQuantity,
		"Expected Lost Sales Revenue":  r.ExpectedLostSalesRevenue,
		"Expected Leftover Quantity":   r.ExpectedLeftoverQuantity,
		"Fill Rate":                    r.FillRate,
		"Stockout Probability":         r.StockoutProbability,
	}
	if r.TargetInStockProbability != 0 {
		labels["Chosen In-Stock Probability"] = r.TargetInStockProbability
	}
	return labels
}

// FillRatePoint is one row of a fill-rate curve: the fill rate achieved by a
// candidate order quantity.
type FillRatePoint struct {
	Quantity int     `json:"quantity"`
	FillRate float64 `json:"fill_rate"`
}

// ProfitPoint is one row of a profit profile across candidate quantities.
type ProfitPoint struct {
	Quantity     int     `json:"quantity"`
	AvgProfit    float64 `json:"avg_profit"`
	MaxProfit    float64 `json:"max_profit"`
	MinProfit    float64 `json:"min_profit"`
	AvgUnitsSold float64 `json:"avg_units_sold"`
	AvgLostSales float64 `json:"avg_lost_sales"`
	AvgLeftover  float64 `json:"avg_leftover"`
}
