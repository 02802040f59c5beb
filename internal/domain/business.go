package domain

import "time"

// NormalizedBusinessRecord representa uma linha da fonte de negócio após a
// canonicalização do schema. Mesma política de preenchimento com zero das
// linhas de marketing
type NormalizedBusinessRecord struct {
	Date         *time.Time
	Orders       int
	NewOrders    int
	NewCustomers int
	TotalRevenue float64
	GrossProfit  float64
}

// DailyBusinessMetric é o agregado de negócio por data.
// GrossMarginPct é nil quando a receita total do dia é zero
type DailyBusinessMetric struct {
	Date           time.Time `json:"date"`
	Orders         int       `json:"orders"`
	NewCustomers   int       `json:"new_customers"`
	TotalRevenue   float64   `json:"total_revenue"`
	GrossProfit    float64   `json:"gross_profit"`
	GrossMarginPct *float64  `json:"gross_margin_pct"`
}
