package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

type stubDashboarder struct {
	snapshot *domain.DashboardSnapshot
	series   []domain.ReconciledDailyMetric
	err      error
}

func (s *stubDashboarder) Snapshot() (*domain.DashboardSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubDashboarder) Timeseries(channel string) ([]domain.ReconciledDailyMetric, error) {
	return s.series, s.err
}

func (s *stubDashboarder) Refresh() (*domain.DashboardSnapshot, error) {
	return s.snapshot, s.err
}

func seriesFixture(t *testing.T, days ...string) []domain.ReconciledDailyMetric {
	t.Helper()

	series := make([]domain.ReconciledDailyMetric, 0, len(days))
	for _, day := range days {
		parsed, err := time.Parse(time.DateOnly, day)
		require.NoError(t, err)
		series = append(series, domain.ReconciledDailyMetric{Date: parsed.UTC(), Spend: 10})
	}

	return series
}

func TestGetDashboardTimeseries(t *testing.T) {
	service := &stubDashboarder{
		series: seriesFixture(t, "2024-01-01", "2024-01-02", "2024-01-03"),
	}

	do := func(target string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, target, nil)
		GetDashboardTimeseries(service).ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("sem filtro retorna a série completa", func(t *testing.T) {
		recorder := do("/v1/dashboard/timeseries")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Series []domain.ReconciledDailyMetric `json:"series"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Len(t, body.Series, 3)
	})

	t.Run("intervalo de datas é inclusivo nas duas pontas", func(t *testing.T) {
		recorder := do("/v1/dashboard/timeseries?from=2024-01-02&to=2024-01-03")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Series []domain.ReconciledDailyMetric `json:"series"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Series, 2)
		assert.Equal(t, "2024-01-02", body.Series[0].Date.Format(time.DateOnly))
	})

	t.Run("data em formato inválido responde VAL_002", func(t *testing.T) {
		recorder := do("/v1/dashboard/timeseries?from=02-01-2024")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VAL_002")
	})
}
