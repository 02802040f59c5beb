package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestService_NormalizeMarketing(t *testing.T) {
	service := NewService()

	t.Run("canonicaliza nomes de coluna e estampa o canal", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"Date", "  Impressions ", "Clicks", "Spend", "Attributed   Revenue", "Campaign"},
			Rows: []domain.RawRecord{
				{
					"Date":                 "2024-01-01",
					"  Impressions ":       "1000",
					"Clicks":               "50",
					"Spend":                "100.5",
					"Attributed   Revenue": "300",
					"Campaign":             " Promo ",
				},
			},
		}

		records := service.NormalizeMarketing(table, "Facebook")

		require.Len(t, records, 1)
		record := records[0]
		require.NotNil(t, record.Date)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *record.Date)
		assert.Equal(t, "Facebook", record.Channel)
		assert.Equal(t, "Promo", record.Campaign)
		assert.Equal(t, 1000, record.Impressions)
		assert.Equal(t, 50, record.Clicks)
		assert.Equal(t, 100.5, record.Spend)
		assert.Equal(t, 300.0, record.AttributedRevenue)
	})

	t.Run("revenue é sinônimo de attributed_revenue", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "revenue"},
			Rows:    []domain.RawRecord{{"date": "2024-01-01", "revenue": "42"}},
		}

		records := service.NormalizeMarketing(table, "Google")

		require.Len(t, records, 1)
		assert.Equal(t, 42.0, records[0].AttributedRevenue)
	})

	t.Run("campo ausente na fonte é sintetizado com zero em todas as linhas", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "spend", "revenue"},
			Rows: []domain.RawRecord{
				{"date": "2024-01-01", "spend": "10", "revenue": "25"},
				{"date": "2024-01-02", "spend": "20", "revenue": "50"},
			},
		}

		records := service.NormalizeMarketing(table, "TikTok")

		require.Len(t, records, 2)
		for _, record := range records {
			assert.Zero(t, record.Clicks)
			assert.Zero(t, record.Impressions)
		}
		assert.Equal(t, 10.0, records[0].Spend)
	})

	t.Run("valores não numéricos e vazios viram zero sem derrubar a linha", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "impressions", "clicks", "spend"},
			Rows: []domain.RawRecord{
				{"date": "2024-01-01", "impressions": "n/a", "clicks": "", "spend": "$1,250.75"},
			},
		}

		records := service.NormalizeMarketing(table, "Facebook")

		require.Len(t, records, 1)
		assert.Zero(t, records[0].Impressions)
		assert.Zero(t, records[0].Clicks)
		assert.Equal(t, 1250.75, records[0].Spend)
	})

	t.Run("data não interpretável fica nula e a linha válida vizinha sobrevive", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "spend"},
			Rows: []domain.RawRecord{
				{"date": "not-a-date", "spend": "10"},
				{"date": "2024-01-02", "spend": "20"},
			},
		}

		records := service.NormalizeMarketing(table, "Facebook")

		require.Len(t, records, 2)
		assert.Nil(t, records[0].Date)
		require.NotNil(t, records[1].Date)
		assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *records[1].Date)
	})

	t.Run("formatos de data variados são aceitos", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "spend"},
			Rows: []domain.RawRecord{
				{"date": "01/15/2024", "spend": "1"},
				{"date": "2024-01-15T10:30:00Z", "spend": "1"},
			},
		}

		records := service.NormalizeMarketing(table, "Google")

		require.Len(t, records, 2)
		expected := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		for _, record := range records {
			require.NotNil(t, record.Date)
			assert.Equal(t, expected, *record.Date, "hora deve ser truncada para data de calendário")
		}
	})

	t.Run("tabela vazia produz resultado vazio", func(t *testing.T) {
		assert.Empty(t, service.NormalizeMarketing(domain.RawTable{}, "Facebook"))
	})
}

func TestService_NormalizeBusiness(t *testing.T) {
	service := NewService()

	t.Run("mapeia os sinônimos da categoria de negócio", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "# of orders", "# or new orders", "new customers", "total revenue", "gross profit", "COGS"},
			Rows: []domain.RawRecord{
				{
					"date":            "2024-01-01",
					"# of orders":     "10",
					"# or new orders": "4",
					"new customers":   "5",
					"total revenue":   "500",
					"gross profit":    "150",
					"COGS":            "350",
				},
			},
		}

		records := service.NormalizeBusiness(table)

		require.Len(t, records, 1)
		record := records[0]
		assert.Equal(t, 10, record.Orders)
		assert.Equal(t, 4, record.NewOrders)
		assert.Equal(t, 5, record.NewCustomers)
		assert.Equal(t, 500.0, record.TotalRevenue)
		assert.Equal(t, 150.0, record.GrossProfit)
	})

	t.Run("sem coluna de pedidos, novos pedidos assumem o papel", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "# or new orders", "total revenue"},
			Rows: []domain.RawRecord{
				{"date": "2024-01-01", "# or new orders": "7", "total revenue": "100"},
			},
		}

		records := service.NormalizeBusiness(table)

		require.Len(t, records, 1)
		assert.Equal(t, 7, records[0].Orders)
		assert.Equal(t, 7, records[0].NewOrders)
	})

	t.Run("campos ausentes são zerados", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{"date", "total revenue"},
			Rows:    []domain.RawRecord{{"date": "2024-01-01", "total revenue": "100"}},
		}

		records := service.NormalizeBusiness(table)

		require.Len(t, records, 1)
		assert.Zero(t, records[0].Orders)
		assert.Zero(t, records[0].NewCustomers)
		assert.Zero(t, records[0].GrossProfit)
	})
}
