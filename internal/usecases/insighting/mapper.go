package insighting

import (
	"errors"
	"fmt"
	"strings"
	"time"

	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"github.com/vfg2006/ad-scaler-api/pkg/utils"
)

// ErrInvalidRecord marca uma linha do export rejeitada na validação.
var ErrInvalidRecord = errors.New("registro de insight inválido")

// Tipos de ação considerados "resultado" para o custo por resultado derivado.
// A ordem é a prioridade de desempate quando o export traz mais de um.
var resultActionTypes = []string{
	"purchase",
	"omni_purchase",
	"offsite_conversion.fb_pixel_purchase",
	"onsite_conversion.purchase",
}

const batchErrorSamples = 3

// BatchMappingError agrega as falhas por linha de um lote. As linhas válidas
// continuam sendo retornadas; quem precisa de tudo-ou-nada inspeciona o erro.
type BatchMappingError struct {
	Failed  int
	Total   int
	Samples []string
}

func (e *BatchMappingError) Error() string {
	return fmt.Sprintf("%d de %d registros rejeitados no mapeamento (exemplos: %s)",
		e.Failed, e.Total, strings.Join(e.Samples, "; "))
}

// MapReportRow valida e transforma uma linha bruta do export em um fato
// tipado. Valores numéricos não interpretáveis viram métrica ausente (nil),
// nunca zero.
func MapReportRow(row metadomain.ReportRow, accountID, adAccountID string) (*domain.AdSetInsight, error) {
	if row.AccountID == "" {
		return nil, fmt.Errorf("%w: account_id ausente", ErrInvalidRecord)
	}
	if row.CampaignID == "" {
		return nil, fmt.Errorf("%w: campaign_id ausente", ErrInvalidRecord)
	}
	if row.AdSetID == "" {
		return nil, fmt.Errorf("%w: adset_id ausente", ErrInvalidRecord)
	}
	if row.DateStart == "" {
		return nil, fmt.Errorf("%w: date_start ausente", ErrInvalidRecord)
	}

	day, err := time.Parse(time.DateOnly, row.DateStart)
	if err != nil {
		return nil, fmt.Errorf("%w: date_start inválido (%s)", ErrInvalidRecord, row.DateStart)
	}

	return &domain.AdSetInsight{
		AccountID:   accountID,
		AdAccountID: adAccountID,
		CampaignID:  row.CampaignID,
		AdSetID:     row.AdSetID,
		Date:        domain.NormalizeDay(day),
		Metrics: domain.InsightMetrics{
			Impressions:      utils.ParseMoney(row.Impressions),
			Clicks:           utils.ParseMoney(row.Clicks),
			Spend:            utils.ParseMoney(row.Spend),
			CPM:              utils.ParseMoney(row.CPM),
			CPC:              utils.ParseMoney(row.CPC),
			CTR:              utils.ParseMoney(row.CTR),
			Reach:            utils.ParseMoney(row.Reach),
			Frequency:        utils.ParseMoney(row.Frequency),
			LinkCTR:          utils.ParseMoney(row.LinkCTR),
			CostPerLinkClick: utils.ParseMoney(row.CostPerLinkClick),
			CostPerResult:    extractActionValue(row.CostPerActions),
			ROAS:             extractActionValue(row.PurchaseROAS),
		},
	}, nil
}

// MapReportRows mapeia o lote inteiro. Linhas rejeitadas não derrubam o lote:
// os fatos válidos são retornados junto de um erro agregado descrevendo as
// falhas.
func MapReportRows(rows []metadomain.ReportRow, accountID, adAccountID string) ([]*domain.AdSetInsight, error) {
	facts := make([]*domain.AdSetInsight, 0, len(rows))
	rowErrors := make([]string, 0)

	for i, row := range rows {
		fact, err := MapReportRow(row, accountID, adAccountID)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("linha %d: %v", i, err))
			continue
		}
		facts = append(facts, fact)
	}

	if len(rowErrors) > 0 {
		samples := rowErrors
		if len(samples) > batchErrorSamples {
			samples = samples[:batchErrorSamples]
		}
		return facts, &BatchMappingError{
			Failed:  len(rowErrors),
			Total:   len(rows),
			Samples: samples,
		}
	}

	return facts, nil
}

// extractActionValue procura, na lista de entradas por tipo de ação, a
// primeira que case com os tipos de resultado rastreados. Sem correspondência
// a métrica fica ausente.
func extractActionValue(actions []metadomain.Action) *float64 {
	for _, wanted := range resultActionTypes {
		for _, action := range actions {
			if action.ActionType == wanted {
				return utils.ParseMoney(action.Value)
			}
		}
	}

	return nil
}

// mapAdSetPayload converte o payload de metadados do ad set, trazendo os
// orçamentos de unidades mínimas (centavos) para unidades da moeda.
func mapAdSetPayload(payload metadomain.AdSetPayload, account *domain.AdAccount, syncedAt time.Time) *domain.AdSet {
	status := payload.EffectiveStatus
	if status == "" {
		status = payload.Status
	}

	return &domain.AdSet{
		AccountID:      account.ID,
		AdAccountID:    account.ExternalID,
		AdSetID:        payload.ID,
		Name:           payload.Name,
		CampaignID:     payload.Campaign.ID,
		CampaignName:   payload.Campaign.Name,
		Status:         status,
		Currency:       account.Currency,
		DailyBudget:    parseBudget(payload.DailyBudget, account.Currency),
		LifetimeBudget: parseBudget(payload.LifetimeBudget, account.Currency),
		StartTime:      parseMetaTime(payload.StartTime),
		EndTime:        parseMetaTime(payload.EndTime),
		UpdatedTime:    parseMetaTime(payload.UpdatedTime),
		SyncedAt:       syncedAt,
	}
}

// parseBudget converte um orçamento em unidades mínimas ("15000" = R$ 150,00)
// para unidades da moeda, respeitando moedas sem casas decimais.
func parseBudget(raw, currency string) *float64 {
	value := utils.ParseMoney(raw)
	if value == nil {
		return nil
	}

	divisor := float64(1)
	for i := int32(0); i < utils.CurrencyExponent(currency); i++ {
		divisor *= 10
	}

	budget := *value / divisor
	return &budget
}

const metaTimeLayout = "2006-01-02T15:04:05-0700"

func parseMetaTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	t, err := time.Parse(metaTimeLayout, raw)
	if err != nil {
		return nil
	}

	return &t
}
