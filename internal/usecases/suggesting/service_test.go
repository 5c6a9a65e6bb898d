package suggesting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	notifiermocks "github.com/vfg2006/ad-scaler-api/infrastructure/notifier/mocks"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência fixa para as janelas de tempo dos testes
var testNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func TestScaleWindowOpen(t *testing.T) {
	tests := []struct {
		name     string
		adSet    *domain.AdSet
		settings *domain.AccountSettings
		expected bool
	}{
		{
			name:     "Sem janelas configuradas fica sempre aberta",
			adSet:    &domain.AdSet{StartTime: timePtr(testNow.AddDate(0, 0, -1))},
			settings: &domain.AccountSettings{},
			expected: true,
		},
		{
			name:     "Janela inicial fechada antes do prazo",
			adSet:    &domain.AdSet{StartTime: timePtr(testNow.AddDate(0, 0, -2))},
			settings: &domain.AccountSettings{InitScaleDay: intPtr(3)},
			expected: false,
		},
		{
			name:     "Janela inicial abre exatamente no prazo (limite inclusivo)",
			adSet:    &domain.AdSet{StartTime: timePtr(testNow.AddDate(0, 0, -3))},
			settings: &domain.AccountSettings{InitScaleDay: intPtr(3)},
			expected: true,
		},
		{
			name:     "Sem start_time a janela inicial fica aberta",
			adSet:    &domain.AdSet{},
			settings: &domain.AccountSettings{InitScaleDay: intPtr(3)},
			expected: true,
		},
		{
			name: "Depois da primeira escala vale a janela de recorrência",
			adSet: &domain.AdSet{
				StartTime:    timePtr(testNow.AddDate(0, 0, -30)),
				LastScaledAt: timePtr(testNow.AddDate(0, 0, -2)),
			},
			settings: &domain.AccountSettings{
				InitScaleDay:  intPtr(1),
				RecurScaleDay: intPtr(7),
			},
			expected: false,
		},
		{
			name: "Janela de recorrência abre exatamente no prazo (limite inclusivo)",
			adSet: &domain.AdSet{
				LastScaledAt: timePtr(testNow.AddDate(0, 0, -7)),
			},
			settings: &domain.AccountSettings{RecurScaleDay: intPtr(7)},
			expected: true,
		},
		{
			name: "Com histórico de escala e sem recorrência configurada fica aberta",
			adSet: &domain.AdSet{
				LastScaledAt: timePtr(testNow.AddDate(0, 0, -1)),
				StartTime:    timePtr(testNow),
			},
			settings: &domain.AccountSettings{InitScaleDay: intPtr(30)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scaleWindowOpen(tt.adSet, tt.settings, testNow))
		})
	}
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name       string
		thresholds map[domain.MetricName]float64
		metrics    domain.InsightMetrics
		validate   func(t *testing.T, triggered []domain.TriggeredMetric)
	}{
		{
			name:       "Métrica de custo dispara acima do limite",
			thresholds: map[domain.MetricName]float64{domain.MetricCPM: 50},
			metrics:    domain.InsightMetrics{CPM: floatPtr(66.6)},
			validate: func(t *testing.T, triggered []domain.TriggeredMetric) {
				assert.Len(t, triggered, 1)
				assert.Equal(t, domain.MetricCPM, triggered[0].Metric)
				assert.Equal(t, 66.6, triggered[0].Value)
				assert.Equal(t, 50.0, triggered[0].Threshold)
			},
		},
		{
			name:       "Métrica de eficiência dispara abaixo do limite",
			thresholds: map[domain.MetricName]float64{domain.MetricCTR: 1.5},
			metrics:    domain.InsightMetrics{CTR: floatPtr(0.8)},
			validate: func(t *testing.T, triggered []domain.TriggeredMetric) {
				assert.Len(t, triggered, 1)
				assert.Equal(t, domain.MetricCTR, triggered[0].Metric)
			},
		},
		{
			name:       "Limite é inclusivo nas duas direções",
			thresholds: map[domain.MetricName]float64{domain.MetricCPM: 50, domain.MetricCTR: 1.5},
			metrics:    domain.InsightMetrics{CPM: floatPtr(50), CTR: floatPtr(1.5)},
			validate: func(t *testing.T, triggered []domain.TriggeredMetric) {
				assert.Len(t, triggered, 2)
			},
		},
		{
			name:       "Métrica ausente nunca dispara, mesmo com limite configurado",
			thresholds: map[domain.MetricName]float64{domain.MetricCTR: 1.5},
			metrics:    domain.InsightMetrics{},
			validate: func(t *testing.T, triggered []domain.TriggeredMetric) {
				assert.Empty(t, triggered)
			},
		},
		{
			name:       "Métrica sem limite configurado é ignorada",
			thresholds: map[domain.MetricName]float64{domain.MetricCPM: 50},
			metrics:    domain.InsightMetrics{CPM: floatPtr(10), CTR: floatPtr(0.001)},
			validate: func(t *testing.T, triggered []domain.TriggeredMetric) {
				assert.Empty(t, triggered)
			},
		},
		{
			name: "Métricas violadas saem na ordem canônica",
			thresholds: map[domain.MetricName]float64{
				domain.MetricROAS: 2.0,
				domain.MetricCPM:  50,
			},
			metrics: domain.InsightMetrics{
				ROAS: floatPtr(1.2),
				CPM:  floatPtr(80),
			},
			validate: func(t *testing.T, triggered []domain.TriggeredMetric) {
				assert.Len(t, triggered, 2)
				assert.Equal(t, domain.MetricCPM, triggered[0].Metric)
				assert.Equal(t, domain.MetricROAS, triggered[1].Metric)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &domain.AccountSettings{Thresholds: tt.thresholds}
			tt.validate(t, evaluateThresholds(settings, &tt.metrics))
		})
	}
}

func TestScaleBudget(t *testing.T) {
	assert.Equal(t, 120.0, scaleBudget(100, 20, "BRL"))
	assert.Equal(t, 114.99, scaleBudget(99.99, 15, "BRL"))
	assert.Equal(t, 105.0, scaleBudget(100, 5, "USD"))

	// Moeda sem casas decimais arredonda para inteiro
	assert.Equal(t, 1150.0, scaleBudget(1000, 15, "JPY"))
	assert.Equal(t, 366.0, scaleBudget(333, 10, "JPY"))
}

func TestService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "123456",
		Name:       "Loja A",
		Currency:   "BRL",
		Status:     domain.AdAccountStatusActive,
	}

	settings := &domain.AccountSettings{
		AccountID:          "ACC001",
		Thresholds:         map[domain.MetricName]float64{domain.MetricCPM: 50},
		ScalePercent:       floatPtr(20),
		InitScaleDay:       intPtr(3),
		MinMetricsExceeded: 1,
	}

	scalableAdSet := &domain.AdSet{
		AccountID:   "ACC001",
		AdAccountID: "123456",
		AdSetID:     "ADSET01",
		Name:        "Conjunto Lookalike",
		CampaignID:  "CAMP01",
		Status:      domain.AdSetStatusActive,
		Currency:    "BRL",
		DailyBudget: floatPtr(100),
		StartTime:   timePtr(testNow.AddDate(0, 0, -10)),
	}

	badInsight := &domain.AdSetInsight{
		AdSetID: "ADSET01",
		Metrics: domain.InsightMetrics{CPM: floatPtr(80)},
	}

	tests := []struct {
		name     string
		setup    func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, adSetRepo *mocks.MockAdSetRepository, insightRepo *mocks.MockAdSetInsightRepository, suggestionRepo *mocks.MockSuggestionRepository, notif *notifiermocks.MockNotifier, notified chan *domain.Suggestion)
		wantErr  error
		validate func(t *testing.T, result *domain.AnalysisResult, notified chan *domain.Suggestion)
	}{
		{
			name: "Conta inexistente retorna erro de domínio",
			setup: func(accountRepo *mocks.MockAccountRepository, _ *mocks.MockAccountSettingsRepository, _ *mocks.MockAdSetRepository, _ *mocks.MockAdSetInsightRepository, _ *mocks.MockSuggestionRepository, _ *notifiermocks.MockNotifier, _ chan *domain.Suggestion) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(nil, nil)
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "Conta sem configuração salva não produz sugestões",
			setup: func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, _ *mocks.MockAdSetRepository, _ *mocks.MockAdSetInsightRepository, _ *mocks.MockSuggestionRepository, _ *notifiermocks.MockNotifier, _ chan *domain.Suggestion) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				settingsRepo.EXPECT().GetByAccountID("ACC001").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.AnalysisResult, _ chan *domain.Suggestion) {
				assert.Equal(t, 0, result.AdSetsProcessed)
				assert.Equal(t, 0, result.SuggestionsCreated)
			},
		},
		{
			name: "Ad set com métrica violada gera sugestão e notificação",
			setup: func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, adSetRepo *mocks.MockAdSetRepository, insightRepo *mocks.MockAdSetInsightRepository, suggestionRepo *mocks.MockSuggestionRepository, notif *notifiermocks.MockNotifier, notified chan *domain.Suggestion) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				settingsRepo.EXPECT().GetByAccountID("ACC001").Return(settings, nil)
				adSetRepo.EXPECT().ListByAccount("123456").Return([]*domain.AdSet{scalableAdSet}, nil)
				insightRepo.EXPECT().LatestByAdSet("123456").
					Return(map[string]*domain.AdSetInsight{"ADSET01": badInsight}, nil)
				suggestionRepo.EXPECT().HasPendingForAdSet("ADSET01").Return(false, nil)
				suggestionRepo.EXPECT().Create(gomock.Any()).Return(true, nil)
				notif.EXPECT().NotifySuggestionCreated(gomock.Any()).
					Do(func(s *domain.Suggestion) { notified <- s })
			},
			validate: func(t *testing.T, result *domain.AnalysisResult, notified chan *domain.Suggestion) {
				assert.Equal(t, 1, result.AdSetsProcessed)
				assert.Equal(t, 1, result.SuggestionsCreated)

				select {
				case suggestion := <-notified:
					assert.NotEmpty(t, suggestion.ID)
					assert.Equal(t, "ACC001", suggestion.AccountID)
					assert.Equal(t, "Loja A", suggestion.AccountName)
					assert.Equal(t, "ADSET01", suggestion.AdSetID)
					assert.Equal(t, 100.0, suggestion.CurrentDailyBudget)
					assert.Equal(t, 120.0, suggestion.SuggestedDailyBudget)
					assert.Equal(t, 20.0, suggestion.ScalePercent)
					assert.Equal(t, 1, suggestion.MetricsExceeded)
					assert.Equal(t, domain.SuggestionStatusPending, suggestion.Status)
					assert.Contains(t, suggestion.DeepLink, "act=123456")
					assert.Contains(t, suggestion.DeepLink, "selected_adset_ids=ADSET01")
				case <-time.After(2 * time.Second):
					t.Fatal("notificação de sugestão não foi disparada")
				}
			},
		},
		{
			name: "Ad set com sugestão pendente não gera duplicata",
			setup: func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, adSetRepo *mocks.MockAdSetRepository, insightRepo *mocks.MockAdSetInsightRepository, suggestionRepo *mocks.MockSuggestionRepository, _ *notifiermocks.MockNotifier, _ chan *domain.Suggestion) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				settingsRepo.EXPECT().GetByAccountID("ACC001").Return(settings, nil)
				adSetRepo.EXPECT().ListByAccount("123456").Return([]*domain.AdSet{scalableAdSet}, nil)
				insightRepo.EXPECT().LatestByAdSet("123456").
					Return(map[string]*domain.AdSetInsight{"ADSET01": badInsight}, nil)
				suggestionRepo.EXPECT().HasPendingForAdSet("ADSET01").Return(true, nil)
			},
			validate: func(t *testing.T, result *domain.AnalysisResult, _ chan *domain.Suggestion) {
				assert.Equal(t, 1, result.AdSetsProcessed)
				assert.Equal(t, 0, result.SuggestionsCreated)
			},
		},
		{
			name: "Corrida no insert: índice único segura a duplicata e a análise segue",
			setup: func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, adSetRepo *mocks.MockAdSetRepository, insightRepo *mocks.MockAdSetInsightRepository, suggestionRepo *mocks.MockSuggestionRepository, _ *notifiermocks.MockNotifier, _ chan *domain.Suggestion) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				settingsRepo.EXPECT().GetByAccountID("ACC001").Return(settings, nil)
				adSetRepo.EXPECT().ListByAccount("123456").Return([]*domain.AdSet{scalableAdSet}, nil)
				insightRepo.EXPECT().LatestByAdSet("123456").
					Return(map[string]*domain.AdSetInsight{"ADSET01": badInsight}, nil)
				suggestionRepo.EXPECT().HasPendingForAdSet("ADSET01").Return(false, nil)
				suggestionRepo.EXPECT().Create(gomock.Any()).Return(false, nil)
			},
			validate: func(t *testing.T, result *domain.AnalysisResult, _ chan *domain.Suggestion) {
				assert.Equal(t, 0, result.SuggestionsCreated)
			},
		},
		{
			name: "Ad set pausado ou sem orçamento diário fica fora da análise",
			setup: func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, adSetRepo *mocks.MockAdSetRepository, insightRepo *mocks.MockAdSetInsightRepository, _ *mocks.MockSuggestionRepository, _ *notifiermocks.MockNotifier, _ chan *domain.Suggestion) {
				paused := &domain.AdSet{
					AdSetID:     "ADSET02",
					Status:      "PAUSED",
					DailyBudget: floatPtr(100),
				}
				lifetimeOnly := &domain.AdSet{
					AdSetID:        "ADSET03",
					Status:         domain.AdSetStatusActive,
					LifetimeBudget: floatPtr(5000),
				}

				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				settingsRepo.EXPECT().GetByAccountID("ACC001").Return(settings, nil)
				adSetRepo.EXPECT().ListByAccount("123456").Return([]*domain.AdSet{paused, lifetimeOnly}, nil)
				insightRepo.EXPECT().LatestByAdSet("123456").Return(map[string]*domain.AdSetInsight{}, nil)
			},
			validate: func(t *testing.T, result *domain.AnalysisResult, _ chan *domain.Suggestion) {
				assert.Equal(t, 0, result.AdSetsProcessed)
				assert.Equal(t, 0, result.SuggestionsCreated)
			},
		},
		{
			name: "Mínimo de métricas violadas segura a sugestão",
			setup: func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, adSetRepo *mocks.MockAdSetRepository, insightRepo *mocks.MockAdSetInsightRepository, _ *mocks.MockSuggestionRepository, _ *notifiermocks.MockNotifier, _ chan *domain.Suggestion) {
				strictSettings := &domain.AccountSettings{
					AccountID:          "ACC001",
					Thresholds:         map[domain.MetricName]float64{domain.MetricCPM: 50, domain.MetricCTR: 1.5},
					ScalePercent:       floatPtr(20),
					MinMetricsExceeded: 2,
				}

				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				settingsRepo.EXPECT().GetByAccountID("ACC001").Return(strictSettings, nil)
				adSetRepo.EXPECT().ListByAccount("123456").Return([]*domain.AdSet{scalableAdSet}, nil)
				insightRepo.EXPECT().LatestByAdSet("123456").
					Return(map[string]*domain.AdSetInsight{"ADSET01": badInsight}, nil)
			},
			validate: func(t *testing.T, result *domain.AnalysisResult, _ chan *domain.Suggestion) {
				assert.Equal(t, 1, result.AdSetsProcessed)
				assert.Equal(t, 0, result.SuggestionsCreated)
			},
		},
		{
			name: "Erro no repositório de sugestões acumula sem derrubar a análise",
			setup: func(accountRepo *mocks.MockAccountRepository, settingsRepo *mocks.MockAccountSettingsRepository, adSetRepo *mocks.MockAdSetRepository, insightRepo *mocks.MockAdSetInsightRepository, suggestionRepo *mocks.MockSuggestionRepository, _ *notifiermocks.MockNotifier, _ chan *domain.Suggestion) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				settingsRepo.EXPECT().GetByAccountID("ACC001").Return(settings, nil)
				adSetRepo.EXPECT().ListByAccount("123456").Return([]*domain.AdSet{scalableAdSet}, nil)
				insightRepo.EXPECT().LatestByAdSet("123456").
					Return(map[string]*domain.AdSetInsight{"ADSET01": badInsight}, nil)
				suggestionRepo.EXPECT().HasPendingForAdSet("ADSET01").
					Return(false, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, result *domain.AnalysisResult, _ chan *domain.Suggestion) {
				assert.Equal(t, 0, result.SuggestionsCreated)
				assert.Len(t, result.Errors, 1)
				assert.Contains(t, result.Errors[0], "ADSET01")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mocks.NewMockAccountRepository(ctrl)
			settingsRepo := mocks.NewMockAccountSettingsRepository(ctrl)
			adSetRepo := mocks.NewMockAdSetRepository(ctrl)
			insightRepo := mocks.NewMockAdSetInsightRepository(ctrl)
			suggestionRepo := mocks.NewMockSuggestionRepository(ctrl)
			notif := notifiermocks.NewMockNotifier(ctrl)
			notified := make(chan *domain.Suggestion, 1)

			tt.setup(accountRepo, settingsRepo, adSetRepo, insightRepo, suggestionRepo, notif, notified)

			svc := &service{
				accountRepo:    accountRepo,
				settingsRepo:   settingsRepo,
				adSetRepo:      adSetRepo,
				insightRepo:    insightRepo,
				suggestionRepo: suggestionRepo,
				notifier:       notif,
				now:            func() time.Time { return testNow },
			}

			result, err := svc.Analyze("ACC001")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, result, notified)
		})
	}
}

func TestService_AnalyzeAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	settingsRepo := mocks.NewMockAccountSettingsRepository(ctrl)

	accounts := []*domain.AdAccount{
		{ID: "ACC001", ExternalID: "111", Status: domain.AdAccountStatusActive},
		{ID: "ACC002", ExternalID: "222", Status: domain.AdAccountStatusActive},
	}

	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return(accounts, nil)

	// ACC001 falha na busca de configuração; ACC002 segue sem configuração
	accountRepo.EXPECT().GetAccountByID("ACC001").Return(accounts[0], nil)
	settingsRepo.EXPECT().GetByAccountID("ACC001").Return(nil, errors.New("conexão perdida"))

	accountRepo.EXPECT().GetAccountByID("ACC002").Return(accounts[1], nil)
	settingsRepo.EXPECT().GetByAccountID("ACC002").Return(nil, nil)

	svc := &service{
		accountRepo:  accountRepo,
		settingsRepo: settingsRepo,
		now:          func() time.Time { return testNow },
	}

	batch, err := svc.AnalyzeAll()

	assert.NoError(t, err)
	assert.Equal(t, 1, batch.AccountsProcessed)
	assert.Len(t, batch.Results, 1)
	assert.Len(t, batch.Errors, 1)
	assert.Contains(t, batch.Errors[0], "ACC001")
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}
