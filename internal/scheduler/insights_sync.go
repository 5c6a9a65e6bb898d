package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/internal/config"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/insighting"
)

// InsightSyncConfig representa a configuração do agendador de sincronização de insights
type InsightSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// InsightSyncService gerencia o agendamento e execução da sincronização de
// insights e metadados de ad sets
type InsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              InsightSyncConfig
	syncService         insighting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewInsightSyncService cria uma nova instância do serviço de sincronização de insights
func NewInsightSyncService(
	syncService insighting.Service,
	appConfig *config.Config,
) *InsightSyncService {
	insightConfig := InsightSyncConfig{
		CronSchedule:      appConfig.InsightSync.CronSchedule,
		LookbackDays:      appConfig.InsightSync.LookbackDays,
		MaxConcurrentJobs: appConfig.InsightSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.InsightSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       insightConfig.CronSchedule,
		"lookback_days":       insightConfig.LookbackDays,
		"max_concurrent_jobs": insightConfig.MaxConcurrentJobs,
		"sync_enabled":        insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de insights carregada")

	return &InsightSyncService{
		scheduler:   scheduler,
		config:      insightConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza os insights de todas as contas ativas
func (s *InsightSyncService) syncAllAccounts(ctx context.Context) {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de insights para todas as contas ativas")

	activeAccounts, err := s.syncService.ListSyncableAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de insights")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de insights")
		return
	}

	// Cada conta roda um relatório assíncrono completo; o semáforo limita
	// quantos relatórios ficam em polling ao mesmo tempo
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range activeAccounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(accountID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncAccount(ctx, accountID)
		}(account.ID)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de insights concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// syncAccount roda o pipeline de sincronização para uma conta
func (s *InsightSyncService) syncAccount(ctx context.Context, accountID string) {
	logrus.WithField("account_id", accountID).Info("Processando sincronização de insights para conta")

	result, err := s.syncService.SyncAccount(ctx, accountID)
	if err != nil {
		if insighting.IsCredentialError(err) {
			// Repetir não resolve credencial inválida; a conta precisa ser
			// reconectada pelo operador
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("Credencial inválida para a conta, sincronização ignorada até reconexão")
			return
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao sincronizar insights da conta")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id":      accountID,
		"records_fetched": result.RecordsFetched,
		"facts_stored":    result.FactsStored,
		"adsets_synced":   result.AdSetsSynced,
		"row_errors":      len(result.Errors),
	}).Info("Insights da conta sincronizados com sucesso")
}

// TriggerManualSync inicia manualmente uma sincronização de insights
func (s *InsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights")
	go s.syncAllAccounts(context.Background())
}

// GetStatus retorna o status atual do agendador. Os timestamps são lidos sob
// o mutex porque o ciclo de sincronização os escreve em outra goroutine.
func (s *InsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_policy":       "dados mantidos permanentemente",
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
