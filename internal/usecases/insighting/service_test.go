package insighting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-scaler-api/internal/config"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var syncTestNow = time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

func testAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "123456",
		Name:       "Loja A",
		Currency:   "BRL",
		Status:     domain.AdAccountStatusActive,
	}
}

func TestService_SyncAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		InsightSync: config.InsightSync{LookbackDays: 7},
	}

	until := domain.NormalizeDay(syncTestNow)
	since := until.AddDate(0, 0, -7)

	tests := []struct {
		name     string
		setup    func(client *metamocks.MockClient, tokenProvider *metamocks.MockTokenProvider, accountRepo *mocks.MockAccountRepository, insightRepo *mocks.MockAdSetInsightRepository, adSetRepo *mocks.MockAdSetRepository)
		wantErr  bool
		validate func(t *testing.T, result *domain.SyncResult, err error)
	}{
		{
			name: "Pipeline completo com linha inválida descartada",
			setup: func(client *metamocks.MockClient, tokenProvider *metamocks.MockTokenProvider, accountRepo *mocks.MockAccountRepository, insightRepo *mocks.MockAdSetInsightRepository, adSetRepo *mocks.MockAdSetRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
				tokenProvider.EXPECT().GetValidAccessToken("ACC001").Return("token123", nil).Times(2)

				client.EXPECT().
					CreateAdSetReport(gomock.Any(), "token123", "123456", since, until).
					Return("RUN1", nil)
				client.EXPECT().
					PollReportUntilDone(gomock.Any(), "token123", "RUN1").
					Return(metadomain.ReportRunStatusCompleted, nil)
				client.EXPECT().
					FetchReportResults(gomock.Any(), "token123", "RUN1").
					Return([]metadomain.ReportRow{
						validRow(),
						{AccountID: "123456"}, // sem campaign/adset/date
					}, nil)

				insightRepo.EXPECT().
					SaveOrUpdateBatch(gomock.Any()).
					DoAndReturn(func(facts []*domain.AdSetInsight) error {
						assert.Len(t, facts, 1)
						assert.Equal(t, "ADSET01", facts[0].AdSetID)
						return nil
					})

				client.EXPECT().
					ListAdSets(gomock.Any(), "token123", "123456").
					Return([]metadomain.AdSetPayload{
						{ID: "ADSET01", Name: "Conjunto Lookalike", Status: "ACTIVE", DailyBudget: "10000"},
					}, nil)
				adSetRepo.EXPECT().
					SaveOrUpdateBatch(gomock.Any()).
					DoAndReturn(func(adSets []*domain.AdSet) error {
						assert.Len(t, adSets, 1)
						assert.InDelta(t, 100.00, *adSets[0].DailyBudget, 0.0001)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.SyncResult, _ error) {
				assert.Equal(t, "ACC001", result.AccountID)
				assert.Equal(t, 2, result.RecordsFetched)
				assert.Equal(t, 1, result.FactsStored)
				assert.Equal(t, 1, result.AdSetsSynced)
				assert.Len(t, result.Errors, 1)
			},
		},
		{
			name: "Conta inexistente",
			setup: func(_ *metamocks.MockClient, _ *metamocks.MockTokenProvider, accountRepo *mocks.MockAccountRepository, _ *mocks.MockAdSetInsightRepository, _ *mocks.MockAdSetRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(nil, nil)
			},
			wantErr: true,
			validate: func(t *testing.T, _ *domain.SyncResult, err error) {
				assert.ErrorIs(t, err, ErrAccountNotFound)
			},
		},
		{
			name: "Relatório que esgota o polling aborta a sincronização",
			setup: func(client *metamocks.MockClient, tokenProvider *metamocks.MockTokenProvider, accountRepo *mocks.MockAccountRepository, _ *mocks.MockAdSetInsightRepository, _ *mocks.MockAdSetRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
				tokenProvider.EXPECT().GetValidAccessToken("ACC001").Return("token123", nil)

				client.EXPECT().
					CreateAdSetReport(gomock.Any(), "token123", "123456", since, until).
					Return("RUN1", nil)
				// Exaustão do polling chega como status de falha sem erro
				client.EXPECT().
					PollReportUntilDone(gomock.Any(), "token123", "RUN1").
					Return(metadomain.ReportRunStatusFailed, nil)
			},
			wantErr: true,
			validate: func(t *testing.T, _ *domain.SyncResult, err error) {
				assert.Contains(t, err.Error(), "RUN1")
				assert.False(t, IsCredentialError(err))
			},
		},
		{
			name: "Token expirado propaga como erro de credencial",
			setup: func(client *metamocks.MockClient, tokenProvider *metamocks.MockTokenProvider, accountRepo *mocks.MockAccountRepository, _ *mocks.MockAdSetInsightRepository, _ *mocks.MockAdSetRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
				tokenProvider.EXPECT().GetValidAccessToken("ACC001").Return("token123", nil)

				client.EXPECT().
					CreateAdSetReport(gomock.Any(), "token123", "123456", since, until).
					Return("", fmt.Errorf("create_report: %w", metadomain.ErrTokenExpired))
			},
			wantErr: true,
			validate: func(t *testing.T, _ *domain.SyncResult, err error) {
				assert.True(t, IsCredentialError(err))
			},
		},
		{
			name: "Falha nos metadados não desfaz os fatos já gravados",
			setup: func(client *metamocks.MockClient, tokenProvider *metamocks.MockTokenProvider, accountRepo *mocks.MockAccountRepository, insightRepo *mocks.MockAdSetInsightRepository, _ *mocks.MockAdSetRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
				tokenProvider.EXPECT().GetValidAccessToken("ACC001").Return("token123", nil).Times(2)

				client.EXPECT().
					CreateAdSetReport(gomock.Any(), "token123", "123456", since, until).
					Return("RUN1", nil)
				client.EXPECT().
					PollReportUntilDone(gomock.Any(), "token123", "RUN1").
					Return(metadomain.ReportRunStatusCompleted, nil)
				client.EXPECT().
					FetchReportResults(gomock.Any(), "token123", "RUN1").
					Return([]metadomain.ReportRow{validRow()}, nil)

				insightRepo.EXPECT().SaveOrUpdateBatch(gomock.Any()).Return(nil)

				client.EXPECT().
					ListAdSets(gomock.Any(), "token123", "123456").
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, result *domain.SyncResult, _ error) {
				assert.Equal(t, 1, result.FactsStored)
				assert.Equal(t, 0, result.AdSetsSynced)
				assert.Len(t, result.Errors, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := metamocks.NewMockClient(ctrl)
			tokenProvider := metamocks.NewMockTokenProvider(ctrl)
			accountRepo := mocks.NewMockAccountRepository(ctrl)
			insightRepo := mocks.NewMockAdSetInsightRepository(ctrl)
			adSetRepo := mocks.NewMockAdSetRepository(ctrl)

			tt.setup(client, tokenProvider, accountRepo, insightRepo, adSetRepo)

			svc := &service{
				cfg:           cfg,
				integrator:    meta.New(cfg, client),
				tokenProvider: tokenProvider,
				accountRepo:   accountRepo,
				insightRepo:   insightRepo,
				adSetRepo:     adSetRepo,
				now:           func() time.Time { return syncTestNow },
			}

			result, err := svc.SyncAccount(context.Background(), "ACC001")

			if tt.wantErr {
				assert.Error(t, err)
				tt.validate(t, result, err)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, result, err)
		})
	}
}

func TestService_ListSyncableAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return([]*domain.AdAccount{testAccount()}, nil)

	svc := &service{accountRepo: accountRepo}

	accounts, err := svc.ListSyncableAccounts()

	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "ACC001", accounts[0].ID)
}
