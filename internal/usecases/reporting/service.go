// Package reporting é o ponto de entrada público do pipeline: carrega as
// fontes, normaliza, agrega, reconcilia e mantém o snapshot em cache entre
// refreshes. Nenhuma combinação de fonte ausente ou malformada derruba o
// pipeline; o único erro sinalizado é a ausência total de dados
package reporting

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/source"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reconciling"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// ErrAllSourcesEmpty indica que marketing e negócio estão ambos vazios: a
// única condição que impede o dashboard de renderizar. O snapshot retornado
// junto com o erro ainda carrega os status das fontes
var ErrAllSourcesEmpty = errors.New("nenhuma fonte de marketing ou de negócio disponível")

// SourceLoader é o contrato do carregador de fontes usado pelo pipeline
type SourceLoader interface {
	Load(role domain.SourceRole) source.LoadResult
	Signature(roles []domain.SourceRole) string
}

// Dashboarder é a interface consumida pela camada de apresentação
type Dashboarder interface {
	Snapshot() (*domain.DashboardSnapshot, error)
	Timeseries(channel string) ([]domain.ReconciledDailyMetric, error)
	Refresh() (*domain.DashboardSnapshot, error)
}

type Service struct {
	loader     SourceLoader
	normalizer *normalizing.Service
	marketing  *aggregating.MarketingService
	business   *aggregating.BusinessService
	reconciler *reconciling.Service
	roles      []domain.SourceRole

	cacheEnabled bool

	// Cache de uma única entrada, chaveado pela identidade dos arquivos das
	// fontes (caminho, tamanho, mtime). Qualquer mudança invalida o snapshot.
	// O mutex garante que chamadores concorrentes recebam um snapshot
	// consistente, nunca uma tabela parcialmente sobrescrita
	mu        sync.Mutex
	cached    *domain.DashboardSnapshot
	cachedSig string
	cachedErr error
}

func NewService(
	cfg *config.Config,
	loader SourceLoader,
	normalizer *normalizing.Service,
	marketing *aggregating.MarketingService,
	business *aggregating.BusinessService,
	reconciler *reconciling.Service,
) *Service {
	return &Service{
		loader:       loader,
		normalizer:   normalizer,
		marketing:    marketing,
		business:     business,
		reconciler:   reconciler,
		roles:        domain.DefaultSourceRoles,
		cacheEnabled: cfg.Data.CacheEnabled,
	}
}

// Snapshot devolve o snapshot corrente do dashboard, reutilizando o cache
// enquanto nenhum arquivo de fonte mudou
func (s *Service) Snapshot() (*domain.DashboardSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	signature := s.loader.Signature(s.roles)

	if s.cacheEnabled && s.cached != nil && signature == s.cachedSig {
		logrus.WithField("refresh_id", s.cached.RefreshID).Debug("Snapshot servido do cache")
		return s.cached, s.cachedErr
	}

	return s.computeAndCache(signature)
}

// Refresh recalcula o snapshot incondicionalmente, descartando o cache
func (s *Service) Refresh() (*domain.DashboardSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.computeAndCache(s.loader.Signature(s.roles))
}

// Timeseries devolve a série reconciliada, opcionalmente restrita a um canal.
// Com canal informado, o resumo diário é recomputado apenas com o agregado
// daquele canal e cruzado de novo com o negócio
func (s *Service) Timeseries(channel string) ([]domain.ReconciledDailyMetric, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	if channel == "" {
		return snapshot.Series, nil
	}

	byDate := make(map[time.Time]domain.DateRollup)
	for _, metric := range snapshot.Marketing.Daily {
		if metric.Channel != channel {
			continue
		}

		rollup := byDate[metric.Date]
		rollup.Date = metric.Date
		rollup.Impressions += metric.Impressions
		rollup.Clicks += metric.Clicks
		rollup.Spend += metric.Spend
		rollup.AttributedRevenue += metric.AttributedRevenue
		byDate[metric.Date] = rollup
	}

	rollups := make([]domain.DateRollup, 0, len(byDate))
	for _, rollup := range byDate {
		rollups = append(rollups, rollup)
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Date.Before(rollups[j].Date)
	})

	return s.reconciler.Join(rollups, snapshot.Business), nil
}

func (s *Service) computeAndCache(signature string) (*domain.DashboardSnapshot, error) {
	snapshot, err := s.compute()

	if s.cacheEnabled {
		s.cached = snapshot
		s.cachedSig = signature
		s.cachedErr = err
	}

	return snapshot, err
}

// compute executa uma passada completa do pipeline: uma leitura por fonte,
// tudo recalculado do zero
func (s *Service) compute() (*domain.DashboardSnapshot, error) {
	refreshID, err := utils.GenerateID()
	if err != nil {
		refreshID = "unknown"
	}

	logger := logrus.WithField("refresh_id", refreshID)
	logger.Info("Iniciando refresh do dashboard")

	statuses := make([]domain.SourceStatus, 0, len(s.roles))
	marketingTables := make([][]domain.NormalizedMarketingRecord, 0, len(s.roles))
	var businessRecords []domain.NormalizedBusinessRecord

	for _, role := range s.roles {
		result := s.loader.Load(role)
		statuses = append(statuses, result.Status)

		if result.Table.Empty() {
			continue
		}

		switch role.Category {
		case domain.CategoryMarketing:
			marketingTables = append(marketingTables, s.normalizer.NormalizeMarketing(result.Table, role.Channel))
		case domain.CategoryBusiness:
			businessRecords = s.normalizer.NormalizeBusiness(result.Table)
		}
	}

	marketingAggregate := s.marketing.Aggregate(marketingTables...)
	businessDaily := s.business.Aggregate(businessRecords)

	series := s.reconciler.Join(marketingAggregate.ByDate, businessDaily)

	snapshot := &domain.DashboardSnapshot{
		RefreshID:   refreshID,
		GeneratedAt: time.Now(),
		Sources:     statuses,
		Marketing:   marketingAggregate,
		Business:    businessDaily,
		Series:      series,
		Summary:     s.reconciler.Summarize(series),
	}

	if marketingAggregate.Empty() && len(businessDaily) == 0 {
		logger.Warn("Nenhuma fonte disponível para o dashboard")
		return snapshot, ErrAllSourcesEmpty
	}

	logger.WithFields(logrus.Fields{
		"marketing_rows": len(marketingAggregate.Daily),
		"business_rows":  len(businessDaily),
		"series_rows":    len(series),
	}).Info("Refresh do dashboard concluído")

	return snapshot, nil
}
