package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

type BusinessService struct{}

func NewBusinessService() *BusinessService {
	return &BusinessService{}
}

type businessSums struct {
	orders       int
	newCustomers int
	totalRevenue float64
	grossProfit  float64
}

// Aggregate agrupa a tabela de negócio por data e computa a margem bruta.
// O negócio tem uma única fonte, então não há união de tabelas aqui.
// Entrada vazia produz resultado vazio, nunca erro
func (s *BusinessService) Aggregate(records []domain.NormalizedBusinessRecord) []domain.DailyBusinessMetric {
	groups := make(map[time.Time]*businessSums)

	for _, record := range records {
		if record.Date == nil {
			continue
		}

		group, ok := groups[*record.Date]
		if !ok {
			group = &businessSums{}
			groups[*record.Date] = group
		}

		group.orders += record.Orders
		group.newCustomers += record.NewCustomers
		group.totalRevenue += record.TotalRevenue
		group.grossProfit += record.GrossProfit
	}

	metrics := make([]domain.DailyBusinessMetric, 0, len(groups))
	for date, group := range groups {
		metrics = append(metrics, domain.DailyBusinessMetric{
			Date:           date,
			Orders:         group.orders,
			NewCustomers:   group.newCustomers,
			TotalRevenue:   group.totalRevenue,
			GrossProfit:    group.grossProfit,
			GrossMarginPct: utils.Ratio(group.grossProfit, group.totalRevenue),
		})
	}

	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Date.Before(metrics[j].Date)
	})

	return metrics
}
