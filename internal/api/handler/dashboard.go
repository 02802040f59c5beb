package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(payload)
}

// writePipelineError traduz o erro do pipeline para a resposta padronizada.
// Ausência total de fontes vira um aviso bloqueante único; o dashboard
// segura os gráficos em vez de renderizar tudo zerado
func writePipelineError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, reporting.ErrAllSourcesEmpty) {
		logger.Warn("dashboard: nenhuma fonte de dados disponível")
		apiErrors.WriteError(w, apiErrors.ErrAllSourcesEmpty,
			"Nenhum dado encontrado. Coloque os CSVs em um dos diretórios de dados e atualize.", nil)
		return
	}

	logger.WithError(err).Error("dashboard: falha ao computar snapshot")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao computar o dashboard", nil)
}

// GetDashboardSummary retorna os KPIs do período completo e o status das fontes
func GetDashboardSummary(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Snapshot()
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"refresh_id":  snapshot.RefreshID,
			"series_rows": len(snapshot.Series),
		}).Info("dashboard: summary computado")

		response := map[string]any{
			"refresh_id":   snapshot.RefreshID,
			"generated_at": snapshot.GeneratedAt,
			"summary":      snapshot.Summary,
			"sources":      snapshot.Sources,
		}

		if err := respondJSON(w, response); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar summary")
		}
	})
}

// GetDashboardTimeseries retorna a série reconciliada por data, opcionalmente
// filtrada por canal e por intervalo de datas via query string
func GetDashboardTimeseries(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		channel := r.URL.Query().Get("channel")

		from, err := parseDateParam(r.URL.Query().Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'from' inválido, use YYYY-MM-DD", nil)
			return
		}

		to, err := parseDateParam(r.URL.Query().Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'to' inválido, use YYYY-MM-DD", nil)
			return
		}

		series, err := service.Timeseries(channel)
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		series = filterByDateRange(series, from, to)

		logger.WithFields(log.Fields{
			"channel": channel,
			"rows":    len(series),
		}).Debug("dashboard: timeseries computada")

		if err := respondJSON(w, map[string]any{"series": series}); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar timeseries")
		}
	})
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	return utils.ParseDate(raw)
}

// filterByDateRange restringe a série ao intervalo [from, to], ambos
// inclusivos e opcionais
func filterByDateRange(series []domain.ReconciledDailyMetric, from, to *time.Time) []domain.ReconciledDailyMetric {
	if from == nil && to == nil {
		return series
	}

	filtered := make([]domain.ReconciledDailyMetric, 0, len(series))
	for _, row := range series {
		if from != nil && row.Date.Before(*from) {
			continue
		}
		if to != nil && row.Date.After(*to) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

// GetChannelEfficiency retorna a tabela de eficiência por canal com as
// participações de investimento e receita
func GetChannelEfficiency(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Snapshot()
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		if err := respondJSON(w, map[string]any{"channels": snapshot.Marketing.ByChannel}); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar canais")
		}
	})
}

// GetCampaignPerformance retorna o desempenho por (canal, campanha),
// ordenado por investimento
func GetCampaignPerformance(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Snapshot()
		if err != nil {
			writePipelineError(w, logger, err)
			return
		}

		if err := respondJSON(w, map[string]any{"campaigns": snapshot.Marketing.ByCampaign}); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar campanhas")
		}
	})
}
