package domain

import "time"

// ReconciledDailyMetric é a linha unificada por data após o left join entre o
// resumo diário de marketing e o agregado diário de negócio. Campos de negócio
// ausentes no join são preenchidos com zero; as métricas derivadas continuam
// usando nil para denominador zero
type ReconciledDailyMetric struct {
	Date              time.Time `json:"date"`
	Impressions       int       `json:"impressions"`
	Clicks            int       `json:"clicks"`
	Spend             float64   `json:"spend"`
	AttributedRevenue float64   `json:"attributed_revenue"`
	Orders            int       `json:"orders"`
	NewCustomers      int       `json:"new_customers"`
	TotalRevenue      float64   `json:"total_revenue"`
	GrossProfit       float64   `json:"gross_profit"`
	CAC               *float64  `json:"cac"`
	RevPerOrder       *float64  `json:"rev_per_order"`
	GrossMarginPct    *float64  `json:"gross_margin_pct"`
}

// KPISummary é o pacote de indicadores do período completo exibido no topo do
// dashboard
type KPISummary struct {
	TotalSpend             float64  `json:"total_spend"`
	TotalAttributedRevenue float64  `json:"total_attributed_revenue"`
	OverallROAS            *float64 `json:"overall_roas"`
	TotalClicks            int      `json:"total_clicks"`
	TotalImpressions       int      `json:"total_impressions"`
	TotalOrders            int      `json:"total_orders"`
	TotalNewCustomers      int      `json:"total_new_customers"`
	OverallCAC             *float64 `json:"overall_cac"`
	OverallGrossMarginPct  *float64 `json:"overall_gross_margin_pct"`
}

// DashboardSnapshot é o resultado completo de uma passada do pipeline,
// recalculado a cada refresh e consumido pela camada de apresentação
type DashboardSnapshot struct {
	RefreshID   string                  `json:"refresh_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	Sources     []SourceStatus          `json:"sources"`
	Marketing   *MarketingAggregate     `json:"marketing"`
	Business    []DailyBusinessMetric   `json:"business"`
	Series      []ReconciledDailyMetric `json:"series"`
	Summary     KPISummary              `json:"summary"`
}
