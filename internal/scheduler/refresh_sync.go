// Package scheduler contém o serviço de agendamento do recálculo do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
)

type RefreshSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// RefreshSyncService recalcula o snapshot do dashboard em horários agendados,
// aquecendo o cache para que as requisições não paguem o custo do pipeline
type RefreshSyncService struct {
	scheduler *gocron.Scheduler
	dashboard reporting.Dashboarder
	config    RefreshSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRefreshSyncService(dashboard reporting.Dashboarder, cfg *config.Config) *RefreshSyncService {
	refreshConfig := RefreshSyncConfig{
		CronSchedule: cfg.RefreshSync.CronSchedule, // Default: toda hora cheia
		Enabled:      cfg.RefreshSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de refresh do dashboard carregada")

	return &RefreshSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		dashboard: dashboard,
		config:    refreshConfig,
	}
}

func (s *RefreshSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Refresh agendado do dashboard desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de refresh do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRefresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar refresh do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de refresh do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara um refresh fora do agendamento
func (s *RefreshSyncService) TriggerManualSync() {
	go s.runRefresh()
}

// Status expõe o estado do agendador para a rota de status das crons
func (s *RefreshSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}

func (s *RefreshSyncService) runRefresh() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Refresh do dashboard já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	snapshot, err := s.dashboard.Refresh()
	if err != nil {
		// Fonte nenhuma disponível não é falha do agendador, apenas registrar
		logrus.WithError(err).Warn("Refresh agendado do dashboard sem dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"refresh_id":  snapshot.RefreshID,
		"series_rows": len(snapshot.Series),
	}).Info("Refresh agendado do dashboard concluído")
}
