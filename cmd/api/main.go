package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/source"
	"github.com/vfg2006/marketing-dashboard-api/internal/api"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reconciling"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := source.NewCSVLoader(cfg.Data.Dirs)

	dashboardService := reporting.NewService(
		cfg,
		loader,
		normalizing.NewService(),
		aggregating.NewMarketingService(),
		aggregating.NewBusinessService(),
		reconciling.NewService(),
	)

	refreshSyncService := scheduler.NewRefreshSyncService(dashboardService, cfg)
	if err := refreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de refresh do dashboard")
	} else {
		logrus.Info("Agendador de refresh do dashboard iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, refreshSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
