package suggesting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/infrastructure/notifier"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"github.com/vfg2006/ad-scaler-api/pkg/utils"
)

// Service roda a análise de escala: cruza o fato mais recente de cada ad set
// com os limiares da conta e cria sugestões pendentes de aprovação.
type Service interface {
	Analyze(accountID string) (*domain.AnalysisResult, error)
	AnalyzeAll() (*domain.BatchAnalysisResult, error)
}

type service struct {
	accountRepo    repository.AccountRepository
	settingsRepo   repository.AccountSettingsRepository
	adSetRepo      repository.AdSetRepository
	insightRepo    repository.AdSetInsightRepository
	suggestionRepo repository.SuggestionRepository
	notifier       notifier.Notifier
	now            func() time.Time
}

func NewService(
	accountRepo repository.AccountRepository,
	settingsRepo repository.AccountSettingsRepository,
	adSetRepo repository.AdSetRepository,
	insightRepo repository.AdSetInsightRepository,
	suggestionRepo repository.SuggestionRepository,
	notifier notifier.Notifier,
) Service {
	return &service{
		accountRepo:    accountRepo,
		settingsRepo:   settingsRepo,
		adSetRepo:      adSetRepo,
		insightRepo:    insightRepo,
		suggestionRepo: suggestionRepo,
		notifier:       notifier,
		now:            time.Now,
	}
}

// Analyze avalia todos os ad sets escaláveis da conta. Falha em um ad set não
// interrompe os demais; os erros acumulam em AnalysisResult.Errors.
func (s *service) Analyze(accountID string) (*domain.AnalysisResult, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta %s: %w", accountID, err)
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	settings, err := s.settingsRepo.GetByAccountID(account.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configuração da conta %s: %w", account.ID, err)
	}

	if settings == nil {
		settings = domain.DefaultAccountSettings(account.ID)
	}

	result := &domain.AnalysisResult{AccountID: account.ID}

	// Sem percentual de escala ou sem limiares a análise não tem o que propor
	if settings.ScalePercent == nil || len(settings.Thresholds) == 0 {
		logrus.WithField("account_id", account.ID).
			Debug("Conta sem configuração de escala, análise ignorada")
		return result, nil
	}

	adSets, err := s.adSetRepo.ListByAccount(account.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ad sets da conta %s: %w", account.ID, err)
	}

	latestInsights, err := s.insightRepo.LatestByAdSet(account.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights da conta %s: %w", account.ID, err)
	}

	for _, adSet := range adSets {
		if !adSet.IsScalable() {
			continue
		}

		result.AdSetsProcessed++

		insight, ok := latestInsights[adSet.AdSetID]
		if !ok {
			continue
		}

		created, err := s.analyzeAdSet(account, settings, adSet, insight)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": account.ID,
				"adset_id":   adSet.AdSetID,
			}).Error("Erro ao analisar ad set")

			result.Errors = append(result.Errors,
				fmt.Sprintf("adset %s: %v", adSet.AdSetID, err))
			continue
		}

		if created {
			result.SuggestionsCreated++
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":          result.AccountID,
		"adsets_processed":    result.AdSetsProcessed,
		"suggestions_created": result.SuggestionsCreated,
	}).Info("Análise de escala concluída")

	return result, nil
}

// AnalyzeAll roda a análise para todas as contas ativas, em sequência.
func (s *service) AnalyzeAll() (*domain.BatchAnalysisResult, error) {
	accounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas ativas: %w", err)
	}

	batch := &domain.BatchAnalysisResult{}

	for _, account := range accounts {
		result, err := s.Analyze(account.ID)
		if err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).
				Error("Erro na análise da conta")
			batch.Errors = append(batch.Errors,
				fmt.Sprintf("conta %s: %v", account.ID, err))
			continue
		}

		batch.AccountsProcessed++
		batch.Results = append(batch.Results, result)
	}

	return batch, nil
}

func (s *service) analyzeAdSet(
	account *domain.AdAccount,
	settings *domain.AccountSettings,
	adSet *domain.AdSet,
	insight *domain.AdSetInsight,
) (bool, error) {
	if !scaleWindowOpen(adSet, settings, s.now()) {
		return false, nil
	}

	triggered := evaluateThresholds(settings, &insight.Metrics)
	if len(triggered) < settings.MinExceeded() {
		return false, nil
	}

	hasPending, err := s.suggestionRepo.HasPendingForAdSet(adSet.AdSetID)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar sugestão pendente: %w", err)
	}
	if hasPending {
		return false, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return false, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	suggestion := &domain.Suggestion{
		ID:           id,
		AccountID:    account.ID,
		AdAccountID:  account.ExternalID,
		AccountName:  account.Name,
		CampaignID:   adSet.CampaignID,
		CampaignName: adSet.CampaignName,
		AdSetID:      adSet.AdSetID,
		AdSetName:    adSet.Name,

		Currency:             adSet.Currency,
		CurrentDailyBudget:   *adSet.DailyBudget,
		SuggestedDailyBudget: scaleBudget(*adSet.DailyBudget, *settings.ScalePercent, adSet.Currency),
		ScalePercent:         *settings.ScalePercent,

		TriggeredMetrics: triggered,
		MetricsExceeded:  len(triggered),

		Note:     settings.Note,
		DeepLink: domain.AdSetDeepLink(account.ExternalID, adSet.AdSetID),
		Status:   domain.SuggestionStatusPending,
	}

	// O índice único parcial resolve a corrida entre a checagem acima e o
	// insert: se outra análise criou a pendência no meio tempo, o insert não
	// afeta linha nenhuma e seguimos sem duplicar
	inserted, err := s.suggestionRepo.Create(suggestion)
	if err != nil {
		return false, fmt.Errorf("erro ao criar sugestão: %w", err)
	}
	if !inserted {
		return false, nil
	}

	logrus.WithFields(logrus.Fields{
		"suggestion_id":    suggestion.ID,
		"adset_id":         adSet.AdSetID,
		"metrics_exceeded": suggestion.MetricsExceeded,
		"suggested_budget": suggestion.SuggestedDailyBudget,
	}).Info("Sugestão de escala criada")

	// Entrega melhor esforço, fora do caminho crítico da análise
	go s.notifier.NotifySuggestionCreated(suggestion)

	return true, nil
}

// scaleWindowOpen aplica as duas janelas de tempo da conta, ambas com limite
// inclusivo. Sem histórico de escala vale a janela inicial (dias desde o
// início do ad set); depois da primeira aprovação vale a de recorrência (dias
// desde a última escala). Janela sem valor configurado fica sempre aberta.
func scaleWindowOpen(adSet *domain.AdSet, settings *domain.AccountSettings, now time.Time) bool {
	if adSet.LastScaledAt != nil {
		if settings.RecurScaleDay == nil {
			return true
		}
		return daysSince(*adSet.LastScaledAt, now) >= *settings.RecurScaleDay
	}

	if settings.InitScaleDay == nil {
		return true
	}

	// Sem start_time conhecido não há como medir a janela inicial; na dúvida
	// o ad set fica elegível em vez de nunca ser analisado
	if adSet.StartTime == nil {
		return true
	}

	return daysSince(*adSet.StartTime, now) >= *settings.InitScaleDay
}

func daysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}

// evaluateThresholds percorre as métricas em ordem estável e coleta as que
// violaram o limite configurado. Métrica ausente no fato nunca dispara.
func evaluateThresholds(settings *domain.AccountSettings, metrics *domain.InsightMetrics) []domain.TriggeredMetric {
	triggered := make([]domain.TriggeredMetric, 0)

	for _, metric := range domain.AllMetrics {
		threshold, ok := settings.Threshold(metric)
		if !ok {
			continue
		}

		observed := metrics.Value(metric)
		if observed == nil {
			continue
		}

		if domain.MetricExceedsThreshold(metric, *observed, threshold) {
			triggered = append(triggered, domain.TriggeredMetric{
				Metric:    metric,
				Value:     *observed,
				Threshold: threshold,
			})
		}
	}

	return triggered
}

// scaleBudget aplica o percentual sobre o orçamento diário com aritmética
// decimal, arredondando para as casas da moeda (half up).
func scaleBudget(currentBudget, scalePercent float64, currency string) float64 {
	budget := decimal.NewFromFloat(currentBudget)
	factor := decimal.NewFromFloat(1).Add(
		decimal.NewFromFloat(scalePercent).Div(decimal.NewFromInt(100)),
	)

	scaled, _ := budget.Mul(factor).Round(utils.CurrencyExponent(currency)).Float64()
	return scaled
}
