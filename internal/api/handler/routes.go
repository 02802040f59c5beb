package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard retorna as rotas das visões do dashboard consumidas pela web
func Dashboard(service reporting.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
		{
			Path:    "/v1/dashboard/timeseries",
			Method:  http.MethodGet,
			Handler: GetDashboardTimeseries(service),
		},
		{
			Path:    "/v1/dashboard/channels",
			Method:  http.MethodGet,
			Handler: GetChannelEfficiency(service),
		},
		{
			Path:    "/v1/dashboard/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaignPerformance(service),
		},
	}
}

func Sources(service reporting.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sources/status",
			Method:  http.MethodGet,
			Handler: GetSourcesStatus(service),
		},
	}
}

func CronJobs(refreshService *scheduler.RefreshSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/refresh/run",
			Method:  http.MethodPost,
			Handler: RunRefreshJob(refreshService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(refreshService),
		},
	}
}
