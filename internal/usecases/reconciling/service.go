// Package reconciling cruza o resumo diário de marketing com o agregado
// diário de negócio e produz a série unificada e os indicadores do período
package reconciling

import (
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Join faz o left join por data: toda data com atividade de marketing é
// mantida, mesmo sem dados de negócio naquele dia. Campos de negócio ausentes
// são preenchidos com zero, a mesma política de preenchimento usada no resto
// do pipeline; cac e rev_per_order seguem a regra de nil para denominador zero
func (s *Service) Join(marketingByDate []domain.DateRollup, businessDaily []domain.DailyBusinessMetric) []domain.ReconciledDailyMetric {
	businessByDate := make(map[time.Time]domain.DailyBusinessMetric, len(businessDaily))
	for _, metric := range businessDaily {
		businessByDate[metric.Date] = metric
	}

	series := make([]domain.ReconciledDailyMetric, 0, len(marketingByDate))
	for _, rollup := range marketingByDate {
		row := domain.ReconciledDailyMetric{
			Date:              rollup.Date,
			Impressions:       rollup.Impressions,
			Clicks:            rollup.Clicks,
			Spend:             rollup.Spend,
			AttributedRevenue: rollup.AttributedRevenue,
		}

		if business, ok := businessByDate[rollup.Date]; ok {
			row.Orders = business.Orders
			row.NewCustomers = business.NewCustomers
			row.TotalRevenue = business.TotalRevenue
			row.GrossProfit = business.GrossProfit
		}

		row.CAC = utils.Ratio(row.Spend, float64(row.NewCustomers))
		row.RevPerOrder = utils.Ratio(row.TotalRevenue, float64(row.Orders))
		row.GrossMarginPct = utils.Ratio(row.GrossProfit, row.TotalRevenue)

		series = append(series, row)
	}

	return series
}

// Summarize computa o pacote de indicadores do período completo a partir da
// série reconciliada. Totais zerados produzem indicadores indefinidos (nil),
// exibidos como "N/A" pela apresentação, nunca um erro
func (s *Service) Summarize(series []domain.ReconciledDailyMetric) domain.KPISummary {
	var summary domain.KPISummary
	var totalRevenue, totalProfit float64

	for _, row := range series {
		summary.TotalSpend += row.Spend
		summary.TotalAttributedRevenue += row.AttributedRevenue
		summary.TotalClicks += row.Clicks
		summary.TotalImpressions += row.Impressions
		summary.TotalOrders += row.Orders
		summary.TotalNewCustomers += row.NewCustomers
		totalRevenue += row.TotalRevenue
		totalProfit += row.GrossProfit
	}

	summary.OverallROAS = utils.Ratio(summary.TotalAttributedRevenue, summary.TotalSpend)
	summary.OverallCAC = utils.Ratio(summary.TotalSpend, float64(summary.TotalNewCustomers))
	summary.OverallGrossMarginPct = utils.Ratio(totalProfit, totalRevenue)

	return summary
}
