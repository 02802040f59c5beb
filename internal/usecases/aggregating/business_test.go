package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestBusinessService_Aggregate(t *testing.T) {
	service := NewBusinessService()

	t.Run("agrupa por data e computa a margem bruta", func(t *testing.T) {
		metrics := service.Aggregate([]domain.NormalizedBusinessRecord{
			{Date: date(t, "2024-01-01"), Orders: 6, NewCustomers: 3, TotalRevenue: 300, GrossProfit: 90},
			{Date: date(t, "2024-01-01"), Orders: 4, NewCustomers: 2, TotalRevenue: 200, GrossProfit: 60},
			{Date: date(t, "2024-01-02"), Orders: 1, NewCustomers: 1, TotalRevenue: 50, GrossProfit: 10},
		})

		require.Len(t, metrics, 2)

		first := metrics[0]
		assert.Equal(t, 10, first.Orders)
		assert.Equal(t, 5, first.NewCustomers)
		assert.Equal(t, 500.0, first.TotalRevenue)
		assert.Equal(t, 150.0, first.GrossProfit)
		require.NotNil(t, first.GrossMarginPct)
		assert.InDelta(t, 0.30, *first.GrossMarginPct, 1e-9)
	})

	t.Run("margem indefinida quando a receita do dia é zero", func(t *testing.T) {
		metrics := service.Aggregate([]domain.NormalizedBusinessRecord{
			{Date: date(t, "2024-01-01"), Orders: 2, GrossProfit: 10},
		})

		require.Len(t, metrics, 1)
		assert.Nil(t, metrics[0].GrossMarginPct)
	})

	t.Run("linhas com data nula são excluídas", func(t *testing.T) {
		metrics := service.Aggregate([]domain.NormalizedBusinessRecord{
			{Orders: 99, TotalRevenue: 1000},
			{Date: date(t, "2024-01-01"), Orders: 1, TotalRevenue: 10},
		})

		require.Len(t, metrics, 1)
		assert.Equal(t, 1, metrics[0].Orders)
	})

	t.Run("entrada vazia produz resultado vazio", func(t *testing.T) {
		assert.Empty(t, service.Aggregate(nil))
	})
}
