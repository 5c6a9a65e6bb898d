package insighting

import (
	"context"
	"time"

	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
)

// ReportRunner executa o ciclo completo de um relatório assíncrono de
// insights (criação, polling e download do export).
type ReportRunner interface {
	RunAdSetInsightsReport(ctx context.Context, accessToken, adAccountID string, since, until time.Time) ([]metadomain.ReportRow, error)
}

// AdSetLister busca a configuração corrente dos ad sets de uma conta.
type AdSetLister interface {
	ListAdSets(ctx context.Context, accessToken, adAccountID string) ([]metadomain.AdSetPayload, error)
}

// Integrator é a visão completa da plataforma de anúncios usada pelo sync.
type Integrator interface {
	ReportRunner
	AdSetLister
}
