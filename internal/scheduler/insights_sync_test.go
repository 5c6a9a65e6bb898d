package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	insightingmocks "github.com/vfg2006/ad-scaler-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func TestInsightSyncService_syncAllAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(syncService *insightingmocks.MockService)
		validate func(t *testing.T, service *InsightSyncService)
	}{
		{
			name: "Conta sem external_id é pulada, as demais sincronizam",
			setup: func(syncService *insightingmocks.MockService) {
				syncService.EXPECT().ListSyncableAccounts().Return([]*domain.AdAccount{
					{ID: "ACC001", ExternalID: "111"},
					{ID: "ACC002", ExternalID: ""}, // nunca conectada
					{ID: "ACC003", ExternalID: "333"},
				}, nil)

				syncService.EXPECT().
					SyncAccount(gomock.Any(), "ACC001").
					Return(&domain.SyncResult{AccountID: "ACC001", FactsStored: 10}, nil)
				syncService.EXPECT().
					SyncAccount(gomock.Any(), "ACC003").
					Return(&domain.SyncResult{AccountID: "ACC003", FactsStored: 4}, nil)
			},
			validate: func(t *testing.T, service *InsightSyncService) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Erro de credencial em uma conta não derruba o ciclo",
			setup: func(syncService *insightingmocks.MockService) {
				syncService.EXPECT().ListSyncableAccounts().Return([]*domain.AdAccount{
					{ID: "ACC001", ExternalID: "111"},
					{ID: "ACC002", ExternalID: "222"},
				}, nil)

				syncService.EXPECT().
					SyncAccount(gomock.Any(), "ACC001").
					Return(nil, fmt.Errorf("sync: %w", metadomain.ErrTokenExpired))
				syncService.EXPECT().
					SyncAccount(gomock.Any(), "ACC002").
					Return(&domain.SyncResult{AccountID: "ACC002"}, nil)
			},
			validate: func(t *testing.T, service *InsightSyncService) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Falha ao listar contas encerra o ciclo sem sincronizar",
			setup: func(syncService *insightingmocks.MockService) {
				syncService.EXPECT().ListSyncableAccounts().Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, service *InsightSyncService) {
				assert.True(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Nenhuma conta ativa encerra o ciclo cedo",
			setup: func(syncService *insightingmocks.MockService) {
				syncService.EXPECT().ListSyncableAccounts().Return([]*domain.AdAccount{}, nil)
			},
			validate: func(t *testing.T, service *InsightSyncService) {
				assert.True(t, service.lastSyncCompletedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncService := insightingmocks.NewMockService(ctrl)
			tt.setup(syncService)

			service := &InsightSyncService{
				config: InsightSyncConfig{
					LookbackDays:      7,
					MaxConcurrentJobs: 2,
					SyncEnabled:       true,
				},
				syncService: syncService,
			}

			service.syncAllAccounts(context.Background())

			assert.False(t, service.syncRunning)
			tt.validate(t, service)
		})
	}
}

// Os handlers HTTP consultam o status enquanto o ciclo roda em outra
// goroutine; os timestamps precisam ser lidos sob o mutex do agendador.
func TestInsightSyncService_GetStatusDuranteCiclo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncService := insightingmocks.NewMockService(ctrl)
	syncService.EXPECT().ListSyncableAccounts().Return([]*domain.AdAccount{
		{ID: "ACC001", ExternalID: "111"},
	}, nil)
	syncService.EXPECT().
		SyncAccount(gomock.Any(), "ACC001").
		DoAndReturn(func(context.Context, string) (*domain.SyncResult, error) {
			time.Sleep(10 * time.Millisecond)
			return &domain.SyncResult{AccountID: "ACC001"}, nil
		})

	service := &InsightSyncService{
		config: InsightSyncConfig{
			LookbackDays:      7,
			MaxConcurrentJobs: 1,
			SyncEnabled:       true,
		},
		syncService: syncService,
	}

	done := make(chan struct{})
	go func() {
		service.syncAllAccounts(context.Background())
		close(done)
	}()

	for {
		select {
		case <-done:
			status := service.GetStatus()
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			return
		default:
			service.GetStatus()
		}
	}
}

func TestInsightSyncService_GetStatus(t *testing.T) {
	service := &InsightSyncService{
		config: InsightSyncConfig{
			CronSchedule:      "0 3 * * *",
			LookbackDays:      7,
			MaxConcurrentJobs: 3,
			SyncEnabled:       true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
	assert.Equal(t, "dados mantidos permanentemente", status["retention_policy"])
}
