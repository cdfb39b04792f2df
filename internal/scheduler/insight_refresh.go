// Package scheduler contém os serviços de agendamento para atualização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/nexgestao/analytics-api/infrastructure/repository"
	"github.com/nexgestao/analytics-api/internal/config"
	"github.com/nexgestao/analytics-api/internal/domain"
	"github.com/nexgestao/analytics-api/internal/usecases/reporting"
	"github.com/nexgestao/analytics-api/pkg/utils"
)

type InsightRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type InsightRefreshService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	clientRepo          repository.ClientRepository
	config              InsightRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string

	cacheMutex     sync.RWMutex
	cachedInsights map[string][]domain.Insight
	lastRefreshAt  map[string]time.Time
}

func NewInsightRefreshService(
	reporter reporting.Reporter,
	clientRepo repository.ClientRepository,
	cfg *config.Config,
) *InsightRefreshService {
	refreshConfig := InsightRefreshConfig{
		CronSchedule: cfg.InsightRefresh.CronSchedule, // Default: a cada 30 minutos
		SyncEnabled:  cfg.InsightRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização de insights carregada")

	return &InsightRefreshService{
		scheduler:      scheduler,
		reporter:       reporter,
		clientRepo:     clientRepo,
		config:         refreshConfig,
		cachedInsights: make(map[string][]domain.Insight),
		lastRefreshAt:  make(map[string]time.Time),
	}
}

func (s *InsightRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de insights")

	// Agendar a atualização de insights
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshInsights(); err != nil {
			logrus.WithError(err).Error("Erro na atualização de insights")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de insights: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InsightRefreshService) RefreshInsights() error {
	s.syncMutex.Lock()

	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização de insights já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = s.lastSyncStartedAt.Format("20060102150405")
	}
	s.lastRunID = runID
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.WithField("run_id", runID).Info("Iniciando atualização de insights")

	accountIDs, err := s.clientRepo.ListAccountIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para atualização de insights")
		return err
	}

	if len(accountIDs) == 0 {
		logrus.Info("Nenhuma conta encontrada para atualização de insights")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"accounts": len(accountIDs),
		"run_id":   runID,
	}).Info("Contas encontradas para atualização de insights")

	s.refreshAccounts(accountIDs, time.Now())

	logrus.WithField("run_id", runID).Info("Atualização de insights concluída")

	return nil
}

func (s *InsightRefreshService) refreshAccounts(accountIDs []string, now time.Time) {
	wg := sync.WaitGroup{}

	type accountInsights struct {
		accountID string
		insights  []domain.Insight
	}

	results := make(chan accountInsights, len(accountIDs))
	for _, accountID := range accountIDs {
		wg.Add(1)

		go func(accountID string) {
			defer wg.Done()

			insights, err := s.reporter.GetInsights(accountID, now)
			if err != nil {
				logrus.WithError(err).WithField("account_id", accountID).
					Error("InsightRefreshService: erro ao avaliar insights da conta")
				return
			}

			results <- accountInsights{accountID: accountID, insights: insights}
		}(accountID)
	}

	wg.Wait()
	close(results)

	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	for result := range results {
		s.cachedInsights[result.accountID] = result.insights
		s.lastRefreshAt[result.accountID] = now
	}
}

// GetCachedInsights retorna os insights mais recentes da conta e a data da última atualização.
// O segundo retorno é falso quando a conta ainda não foi processada.
func (s *InsightRefreshService) GetCachedInsights(accountID string) ([]domain.Insight, time.Time, bool) {
	s.cacheMutex.RLock()
	defer s.cacheMutex.RUnlock()

	insights, ok := s.cachedInsights[accountID]
	if !ok {
		return nil, time.Time{}, false
	}

	return insights, s.lastRefreshAt[accountID], true
}

// TriggerManualSync inicia manualmente uma atualização de insights
func (s *InsightRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de insights")
	go s.RefreshInsights()
}

// GetStatus retorna o status atual do agendador
func (s *InsightRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
