package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
)

func validRow() metadomain.ReportRow {
	return metadomain.ReportRow{
		AccountID:    "123456",
		CampaignID:   "CAMP01",
		CampaignName: "Campanha Verão",
		AdSetID:      "ADSET01",
		AdSetName:    "Conjunto Lookalike",
		DateStart:    "2026-08-20",
		DateStop:     "2026-08-20",
		Impressions:  "1500",
		Clicks:       "42",
		Spend:        "99.90",
		CPM:          "66.60",
		CTR:          "2.8",
	}
}

func TestMapReportRow(t *testing.T) {
	tests := []struct {
		name     string
		row      func() metadomain.ReportRow
		wantErr  bool
		validate func(t *testing.T, fact *domain.AdSetInsight)
	}{
		{
			name: "Linha completa vira fato com data normalizada",
			row:  validRow,
			validate: func(t *testing.T, fact *domain.AdSetInsight) {
				assert.Equal(t, "ACC001", fact.AccountID)
				assert.Equal(t, "123456", fact.AdAccountID)
				assert.Equal(t, "ADSET01", fact.AdSetID)
				assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), fact.Date)
				assert.Equal(t, 1500.0, *fact.Metrics.Impressions)
				assert.Equal(t, 99.90, *fact.Metrics.Spend)
			},
		},
		{
			name: "Métrica ausente fica nil, não zero",
			row: func() metadomain.ReportRow {
				row := validRow()
				row.Reach = ""
				row.Frequency = ""
				return row
			},
			validate: func(t *testing.T, fact *domain.AdSetInsight) {
				assert.Nil(t, fact.Metrics.Reach)
				assert.Nil(t, fact.Metrics.Frequency)
				assert.NotNil(t, fact.Metrics.Impressions)
			},
		},
		{
			name: "Métrica não interpretável vira ausente",
			row: func() metadomain.ReportRow {
				row := validRow()
				row.CPC = "n/a"
				return row
			},
			validate: func(t *testing.T, fact *domain.AdSetInsight) {
				assert.Nil(t, fact.Metrics.CPC)
			},
		},
		{
			name: "Sem adset_id a linha é rejeitada",
			row: func() metadomain.ReportRow {
				row := validRow()
				row.AdSetID = ""
				return row
			},
			wantErr: true,
		},
		{
			name: "Sem campaign_id a linha é rejeitada",
			row: func() metadomain.ReportRow {
				row := validRow()
				row.CampaignID = ""
				return row
			},
			wantErr: true,
		},
		{
			name: "Data em formato inválido rejeita a linha",
			row: func() metadomain.ReportRow {
				row := validRow()
				row.DateStart = "20/08/2026"
				return row
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fact, err := MapReportRow(tt.row(), "ACC001", "123456")

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRecord)
				assert.Nil(t, fact)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, fact)
		})
	}
}

func TestMapReportRows_LinhasInvalidasNaoDerrubamOLote(t *testing.T) {
	badRow := validRow()
	badRow.AdSetID = ""

	otherBadRow := validRow()
	otherBadRow.DateStart = "invalida"

	rows := []metadomain.ReportRow{validRow(), badRow, validRow(), otherBadRow}

	facts, err := MapReportRows(rows, "ACC001", "123456")

	assert.Len(t, facts, 2)
	assert.Error(t, err)

	var batchErr *BatchMappingError
	assert.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 2, batchErr.Failed)
	assert.Equal(t, 4, batchErr.Total)
	assert.Len(t, batchErr.Samples, 2)
}

func TestMapReportRows_LoteLimpoNaoRetornaErro(t *testing.T) {
	facts, err := MapReportRows([]metadomain.ReportRow{validRow(), validRow()}, "ACC001", "123456")

	assert.NoError(t, err)
	assert.Len(t, facts, 2)
}

func TestExtractActionValue(t *testing.T) {
	tests := []struct {
		name     string
		actions  []metadomain.Action
		expected *float64
	}{
		{
			name:     "Sem ações a métrica fica ausente",
			actions:  nil,
			expected: nil,
		},
		{
			name: "Tipo de ação não rastreado é ignorado",
			actions: []metadomain.Action{
				{ActionType: "link_click", Value: "1.50"},
			},
			expected: nil,
		},
		{
			name: "purchase tem prioridade sobre omni_purchase",
			actions: []metadomain.Action{
				{ActionType: "omni_purchase", Value: "30.00"},
				{ActionType: "purchase", Value: "25.00"},
			},
			expected: floatPtr(25.00),
		},
		{
			name: "Cai para o pixel quando não há purchase direto",
			actions: []metadomain.Action{
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "48.90"},
				{ActionType: "link_click", Value: "1.10"},
			},
			expected: floatPtr(48.90),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractActionValue(tt.actions)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 0.0001)
		})
	}
}

func TestParseBudget(t *testing.T) {
	brl := parseBudget("15000", "BRL")
	assert.NotNil(t, brl)
	assert.InDelta(t, 150.00, *brl, 0.0001)

	jpy := parseBudget("15000", "JPY")
	assert.NotNil(t, jpy)
	assert.InDelta(t, 15000.0, *jpy, 0.0001)

	assert.Nil(t, parseBudget("", "BRL"))
}

func TestMapAdSetPayload(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "123456",
		Currency:   "BRL",
	}
	syncedAt := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	payload := metadomain.AdSetPayload{
		ID:              "ADSET01",
		Name:            "Conjunto Lookalike",
		Status:          "ACTIVE",
		EffectiveStatus: "CAMPAIGN_PAUSED",
		Campaign: metadomain.CampaignRef{
			ID:   "CAMP01",
			Name: "Campanha Verão",
		},
		DailyBudget: "10000",
		StartTime:   "2026-08-01T00:00:00-0300",
	}

	adSet := mapAdSetPayload(payload, account, syncedAt)

	// O status efetivo prevalece sobre o status configurado
	assert.Equal(t, "CAMPAIGN_PAUSED", adSet.Status)
	assert.Equal(t, "ACC001", adSet.AccountID)
	assert.Equal(t, "123456", adSet.AdAccountID)
	assert.Equal(t, "BRL", adSet.Currency)
	assert.InDelta(t, 100.00, *adSet.DailyBudget, 0.0001)
	assert.Nil(t, adSet.LifetimeBudget)
	assert.NotNil(t, adSet.StartTime)
	assert.Nil(t, adSet.EndTime)
	assert.Equal(t, syncedAt, adSet.SyncedAt)

	// Sem effective_status cai para o status configurado
	payload.EffectiveStatus = ""
	adSet = mapAdSetPayload(payload, account, syncedAt)
	assert.Equal(t, "ACTIVE", adSet.Status)
}

func floatPtr(f float64) *float64 {
	return &f
}
