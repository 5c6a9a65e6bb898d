package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/internal/config"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/suggesting"
)

// SuggestionAnalysisConfig representa a configuração do agendador de análise de sugestões
type SuggestionAnalysisConfig struct {
	CronSchedule    string
	AnalysisEnabled bool
}

// SuggestionAnalysisService gerencia o agendamento e execução da análise de
// sugestões de escala. Roda depois da sincronização de insights para avaliar
// os fatos mais recentes.
type SuggestionAnalysisService struct {
	scheduler               *gocron.Scheduler
	config                  SuggestionAnalysisConfig
	analysisService         suggesting.Service
	analysisRunning         bool
	analysisMutex           sync.Mutex
	lastAnalysisStartedAt   time.Time
	lastAnalysisCompletedAt time.Time
}

// NewSuggestionAnalysisService cria uma nova instância do serviço de análise de sugestões
func NewSuggestionAnalysisService(
	analysisService suggesting.Service,
	appConfig *config.Config,
) *SuggestionAnalysisService {
	analysisConfig := SuggestionAnalysisConfig{
		CronSchedule:    appConfig.SuggestionAnalysis.CronSchedule,
		AnalysisEnabled: appConfig.SuggestionAnalysis.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    analysisConfig.CronSchedule,
		"analysis_enabled": analysisConfig.AnalysisEnabled,
	}).Info("Configuração do agendador de análise de sugestões carregada")

	return &SuggestionAnalysisService{
		scheduler:       scheduler,
		config:          analysisConfig,
		analysisService: analysisService,
		analysisRunning: false,
	}
}

// Start inicia o agendador
func (s *SuggestionAnalysisService) Start(ctx context.Context) error {
	if !s.config.AnalysisEnabled {
		logrus.Info("Análise de sugestões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análise de sugestões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.analyzeAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise de sugestões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise de sugestões")
		s.scheduler.Stop()
	}()

	return nil
}

// analyzeAllAccounts roda a análise de escala para todas as contas ativas
func (s *SuggestionAnalysisService) analyzeAllAccounts() {
	startTime := time.Now()

	s.analysisMutex.Lock()
	if s.analysisRunning {
		s.analysisMutex.Unlock()
		logrus.Info("Análise de sugestões já em andamento, ignorando")
		return
	}
	s.analysisRunning = true
	s.lastAnalysisStartedAt = startTime
	s.analysisMutex.Unlock()

	defer func() {
		s.analysisMutex.Lock()
		s.analysisRunning = false
		s.analysisMutex.Unlock()
	}()

	logrus.Info("Iniciando análise de sugestões para todas as contas ativas")

	batch, err := s.analysisService.AnalyzeAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar análise de sugestões")
		return
	}

	totalCreated := 0
	for _, result := range batch.Results {
		totalCreated += result.SuggestionsCreated
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":            duration.String(),
		"accounts_processed":  batch.AccountsProcessed,
		"suggestions_created": totalCreated,
		"account_errors":      len(batch.Errors),
	}).Info("Análise de sugestões concluída")

	s.analysisMutex.Lock()
	s.lastAnalysisCompletedAt = time.Now()
	s.analysisMutex.Unlock()
}

// TriggerManualAnalysis inicia manualmente uma análise de sugestões
func (s *SuggestionAnalysisService) TriggerManualAnalysis() {
	s.analysisMutex.Lock()
	if s.analysisRunning {
		s.analysisMutex.Unlock()
		logrus.Info("Análise de sugestões já em andamento, ignorando solicitação manual")
		return
	}
	s.analysisMutex.Unlock()

	logrus.Info("Iniciando análise manual de sugestões")
	go s.analyzeAllAccounts()
}

// GetStatus retorna o status atual do agendador. Os timestamps são lidos sob
// o mutex porque o ciclo de análise os escreve em outra goroutine.
func (s *SuggestionAnalysisService) GetStatus() map[string]any {
	s.analysisMutex.Lock()
	startedAt := s.lastAnalysisStartedAt
	completedAt := s.lastAnalysisCompletedAt
	s.analysisMutex.Unlock()

	return map[string]any{
		"analysis_enabled":           s.config.AnalysisEnabled,
		"analysis_cron":              s.config.CronSchedule,
		"last_analysis_started_at":   startedAt,
		"last_analysis_completed_at": completedAt,
	}
}
