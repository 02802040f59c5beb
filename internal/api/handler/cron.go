package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

// RunRefreshJob dispara manualmente o recálculo do dashboard
func RunRefreshJob(service *scheduler.RefreshSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunRefreshJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de refresh não disponível", nil)
			return
		}

		service.TriggerManualSync()

		respondJSON(w, map[string]any{
			"message": "Refresh do dashboard iniciado com sucesso",
		})
	})
}

// GetCronStatus retorna o status do agendador de refresh
func GetCronStatus(service *scheduler.RefreshSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de refresh não disponível", nil)
			return
		}

		respondJSON(w, map[string]any{
			"refresh": service.Status(),
		})
	})
}
