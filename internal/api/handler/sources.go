package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// GetSourcesStatus retorna o status tipado de carregamento de cada fonte.
// Fonte ausente é informativo, então este endpoint responde mesmo quando o
// pipeline não encontrou dado nenhum
func GetSourcesStatus(service reporting.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Snapshot()
		if err != nil && !errors.Is(err, reporting.ErrAllSourcesEmpty) {
			writePipelineError(w, logger, err)
			return
		}

		if err := respondJSON(w, map[string]any{"sources": snapshot.Sources}); err != nil {
			logger.WithError(err).Error("sources: falha ao serializar status")
		}
	})
}
