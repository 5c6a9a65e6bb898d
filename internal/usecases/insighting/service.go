package insighting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository"
	"github.com/vfg2006/ad-scaler-api/internal/config"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
)

var ErrAccountNotFound = errors.New("conta não encontrada")

// Service sincroniza fatos de performance e metadados de ad sets de uma conta
// a partir da plataforma de anúncios.
type Service interface {
	SyncAccount(ctx context.Context, accountID string) (*domain.SyncResult, error)
	SyncAdSetMetadata(ctx context.Context, account *domain.AdAccount) (int, error)

	// ListSyncableAccounts retorna as contas ativas elegíveis para o ciclo
	// agendado; o paralelismo entre contas fica a cargo do agendador
	ListSyncableAccounts() ([]*domain.AdAccount, error)
}

type service struct {
	cfg           *config.Config
	integrator    Integrator
	tokenProvider metaclient.TokenProvider
	accountRepo   repository.AccountRepository
	insightRepo   repository.AdSetInsightRepository
	adSetRepo     repository.AdSetRepository
	now           func() time.Time
}

func NewService(
	cfg *config.Config,
	integrator Integrator,
	tokenProvider metaclient.TokenProvider,
	accountRepo repository.AccountRepository,
	insightRepo repository.AdSetInsightRepository,
	adSetRepo repository.AdSetRepository,
) Service {
	return &service{
		cfg:           cfg,
		integrator:    integrator,
		tokenProvider: tokenProvider,
		accountRepo:   accountRepo,
		insightRepo:   insightRepo,
		adSetRepo:     adSetRepo,
		now:           time.Now,
	}
}

// SyncAccount roda o pipeline completo para uma conta: relatório assíncrono
// sobre a janela de lookback, mapeamento das linhas, upsert idempotente dos
// fatos e atualização dos metadados dos ad sets. Linhas inválidas não abortam
// a sincronização; ficam registradas em SyncResult.Errors.
func (s *service) SyncAccount(ctx context.Context, accountID string) (*domain.SyncResult, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta %s: %w", accountID, err)
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	accessToken, err := s.tokenProvider.GetValidAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de acesso da conta %s: %w", account.ID, err)
	}

	until := domain.NormalizeDay(s.now())
	since := until.AddDate(0, 0, -s.cfg.InsightSync.LookbackDays)

	rows, err := s.integrator.RunAdSetInsightsReport(ctx, accessToken, account.ExternalID, since, until)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar relatório de insights da conta %s: %w", account.ID, err)
	}

	result := &domain.SyncResult{
		AccountID:      account.ID,
		RecordsFetched: len(rows),
	}

	facts, mapErr := MapReportRows(rows, account.ID, account.ExternalID)
	if mapErr != nil {
		var batchErr *BatchMappingError
		if !errors.As(mapErr, &batchErr) {
			return nil, fmt.Errorf("erro ao mapear linhas do relatório: %w", mapErr)
		}

		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"failed":     batchErr.Failed,
			"total":      batchErr.Total,
		}).Warn("Registros inválidos descartados durante a sincronização")

		result.Errors = append(result.Errors, batchErr.Error())
	}

	if err := s.insightRepo.SaveOrUpdateBatch(facts); err != nil {
		return nil, fmt.Errorf("erro ao persistir insights da conta %s: %w", account.ID, err)
	}
	result.FactsStored = len(facts)

	synced, err := s.SyncAdSetMetadata(ctx, account)
	if err != nil {
		// Os fatos já foram gravados; a falha nos metadados não desfaz o ciclo
		logrus.WithError(err).WithField("account_id", account.ID).
			Error("Erro ao sincronizar metadados dos ad sets")
		result.Errors = append(result.Errors, err.Error())
	}
	result.AdSetsSynced = synced

	logrus.WithFields(logrus.Fields{
		"account_id":      account.ID,
		"records_fetched": result.RecordsFetched,
		"facts_stored":    result.FactsStored,
		"adsets_synced":   result.AdSetsSynced,
	}).Info("Sincronização de insights concluída")

	return result, nil
}

// SyncAdSetMetadata busca a configuração corrente dos ad sets (status,
// orçamentos, janelas de veiculação) e grava o snapshot. last_scaled_at não é
// tocado pelo upsert.
func (s *service) SyncAdSetMetadata(ctx context.Context, account *domain.AdAccount) (int, error) {
	accessToken, err := s.tokenProvider.GetValidAccessToken(account.ID)
	if err != nil {
		return 0, fmt.Errorf("erro ao obter token de acesso da conta %s: %w", account.ID, err)
	}

	payloads, err := s.integrator.ListAdSets(ctx, accessToken, account.ExternalID)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar ad sets da conta %s: %w", account.ID, err)
	}

	syncedAt := s.now()
	adSets := make([]*domain.AdSet, 0, len(payloads))
	for _, payload := range payloads {
		adSets = append(adSets, mapAdSetPayload(payload, account, syncedAt))
	}

	if err := s.adSetRepo.SaveOrUpdateBatch(adSets); err != nil {
		return 0, fmt.Errorf("erro ao salvar ad sets da conta %s: %w", account.ID, err)
	}

	return len(adSets), nil
}

func (s *service) ListSyncableAccounts() ([]*domain.AdAccount, error) {
	return s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
}

// IsCredentialError informa se a falha veio de token expirado ou de conexão
// que precisa ser refeita, casos em que repetir não adianta.
func IsCredentialError(err error) bool {
	return errors.Is(err, metadomain.ErrTokenExpired) || errors.Is(err, metadomain.ErrNeedsReconnect)
}
