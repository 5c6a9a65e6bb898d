package meta

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-scaler-api/internal/config"
)

// MetaIntegrator orquestra o client da Graph API para o pipeline de
// sincronização: roda o ciclo completo de um relatório assíncrono e expõe a
// listagem de ad sets.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// RunAdSetInsightsReport cria o relatório, aguarda sua conclusão e baixa o
// export. Retorna as linhas brutas; o mapeamento para fatos tipados é
// responsabilidade do chamador.
func (s *MetaIntegrator) RunAdSetInsightsReport(
	ctx context.Context,
	accessToken string,
	adAccountID string,
	since time.Time,
	until time.Time,
) ([]metadomain.ReportRow, error) {
	reportRunID, err := s.Client.CreateAdSetReport(ctx, accessToken, adAccountID, since, until)
	if err != nil {
		return nil, err
	}

	status, err := s.Client.PollReportUntilDone(ctx, accessToken, reportRunID)
	if err != nil {
		return nil, err
	}

	if status != metadomain.ReportRunStatusCompleted {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": adAccountID,
			"report_run_id": reportRunID,
			"status":        string(status),
		}).Warn("Relatório de insights não foi concluído")

		return nil, metadomain.NewExternalServiceError("run_report", 0,
			metadomain.NewReportFailedError(reportRunID))
	}

	return s.Client.FetchReportResults(ctx, accessToken, reportRunID)
}

// ListAdSets repassa a listagem de ad sets da conta.
func (s *MetaIntegrator) ListAdSets(ctx context.Context, accessToken, adAccountID string) ([]metadomain.AdSetPayload, error) {
	return s.Client.ListAdSets(ctx, accessToken, adAccountID)
}
