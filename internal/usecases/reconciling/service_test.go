package reconciling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed.UTC()
}

func TestService_Join(t *testing.T) {
	service := NewService()

	t.Run("cruza marketing e negócio por data com as métricas de referência", func(t *testing.T) {
		marketing := []domain.DateRollup{
			{Date: day(t, "2024-01-01"), Impressions: 1000, Clicks: 50, Spend: 100, AttributedRevenue: 300},
		}
		business := []domain.DailyBusinessMetric{
			{Date: day(t, "2024-01-01"), Orders: 10, NewCustomers: 5, TotalRevenue: 500, GrossProfit: 150},
		}

		series := service.Join(marketing, business)

		require.Len(t, series, 1)
		row := series[0]
		assert.Equal(t, 100.0, row.Spend)
		assert.Equal(t, 300.0, row.AttributedRevenue)
		assert.Equal(t, 10, row.Orders)
		require.NotNil(t, row.CAC)
		assert.Equal(t, 20.0, *row.CAC)
		require.NotNil(t, row.RevPerOrder)
		assert.Equal(t, 50.0, *row.RevPerOrder)
		require.NotNil(t, row.GrossMarginPct)
		assert.InDelta(t, 0.30, *row.GrossMarginPct, 1e-9)
	})

	t.Run("data com marketing e sem negócio é mantida com campos de negócio zerados", func(t *testing.T) {
		marketing := []domain.DateRollup{
			{Date: day(t, "2024-01-01"), Spend: 100, AttributedRevenue: 300},
			{Date: day(t, "2024-01-02"), Spend: 50, AttributedRevenue: 80},
		}
		business := []domain.DailyBusinessMetric{
			{Date: day(t, "2024-01-01"), Orders: 10, NewCustomers: 5, TotalRevenue: 500, GrossProfit: 150},
		}

		series := service.Join(marketing, business)

		require.Len(t, series, 2)
		orphan := series[1]
		assert.Zero(t, orphan.Orders)
		assert.Zero(t, orphan.TotalRevenue)
		assert.Nil(t, orphan.CAC, "cac indefinido sem novos clientes")
		assert.Nil(t, orphan.RevPerOrder)
	})

	t.Run("data de negócio sem marketing fica fora: a chave do join vem do marketing", func(t *testing.T) {
		business := []domain.DailyBusinessMetric{
			{Date: day(t, "2024-01-01"), Orders: 10, TotalRevenue: 500},
		}

		series := service.Join(nil, business)

		assert.Empty(t, series)
	})
}

func TestService_Summarize(t *testing.T) {
	service := NewService()

	t.Run("totais do período e indicadores gerais", func(t *testing.T) {
		series := []domain.ReconciledDailyMetric{
			{Spend: 100, AttributedRevenue: 300, Clicks: 50, Impressions: 1000, Orders: 10, NewCustomers: 5, TotalRevenue: 500, GrossProfit: 150},
			{Spend: 100, AttributedRevenue: 100, Clicks: 25, Impressions: 500, Orders: 5, NewCustomers: 5, TotalRevenue: 250, GrossProfit: 75},
		}

		summary := service.Summarize(series)

		assert.Equal(t, 200.0, summary.TotalSpend)
		assert.Equal(t, 400.0, summary.TotalAttributedRevenue)
		assert.Equal(t, 75, summary.TotalClicks)
		assert.Equal(t, 1500, summary.TotalImpressions)
		assert.Equal(t, 15, summary.TotalOrders)
		assert.Equal(t, 10, summary.TotalNewCustomers)
		require.NotNil(t, summary.OverallROAS)
		assert.Equal(t, 2.0, *summary.OverallROAS)
		require.NotNil(t, summary.OverallCAC)
		assert.Equal(t, 20.0, *summary.OverallCAC)
		require.NotNil(t, summary.OverallGrossMarginPct)
		assert.InDelta(t, 0.30, *summary.OverallGrossMarginPct, 1e-9)
	})

	t.Run("série vazia produz indicadores indefinidos, não pânico", func(t *testing.T) {
		summary := service.Summarize(nil)

		assert.Zero(t, summary.TotalSpend)
		assert.Nil(t, summary.OverallROAS)
		assert.Nil(t, summary.OverallCAC)
		assert.Nil(t, summary.OverallGrossMarginPct)
	})
}
