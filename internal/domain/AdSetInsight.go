package domain

import (
	"time"
)

// InsightMetrics reúne as métricas diárias de um ad set. Todos os campos são
// ponteiros: nil significa "métrica ausente no relatório", que é diferente de
// zero — uma métrica ausente nunca participa da análise de limites.
type InsightMetrics struct {
	Impressions      *float64 `json:"impressions,omitempty"`
	Clicks           *float64 `json:"clicks,omitempty"`
	Spend            *float64 `json:"spend,omitempty"`
	CPM              *float64 `json:"cpm,omitempty"`
	CPC              *float64 `json:"cpc,omitempty"`
	CTR              *float64 `json:"ctr,omitempty"`
	Reach            *float64 `json:"reach,omitempty"`
	Frequency        *float64 `json:"frequency,omitempty"`
	LinkCTR          *float64 `json:"link_ctr,omitempty"`
	CostPerLinkClick *float64 `json:"cost_per_link_click,omitempty"`
	CostPerResult    *float64 `json:"cost_per_result,omitempty"`
	ROAS             *float64 `json:"roas,omitempty"`
}

// Value retorna o valor observado da métrica, ou nil quando ausente.
func (m *InsightMetrics) Value(metric MetricName) *float64 {
	if m == nil {
		return nil
	}

	switch metric {
	case MetricImpressions:
		return m.Impressions
	case MetricClicks:
		return m.Clicks
	case MetricSpend:
		return m.Spend
	case MetricCPM:
		return m.CPM
	case MetricCPC:
		return m.CPC
	case MetricCTR:
		return m.CTR
	case MetricReach:
		return m.Reach
	case MetricFrequency:
		return m.Frequency
	case MetricLinkCTR:
		return m.LinkCTR
	case MetricCostPerLinkClick:
		return m.CostPerLinkClick
	case MetricCostPerResult:
		return m.CostPerResult
	case MetricROAS:
		return m.ROAS
	}

	return nil
}

// AdSetInsight representa a performance de um ad set em um dia de calendário.
// Única por (ad_account_id, adset_id, date); uma nova sincronização para a
// mesma chave substitui o registro por completo.
type AdSetInsight struct {
	ID          int64          `json:"id"`
	AccountID   string         `json:"account_id"`
	AdAccountID string         `json:"ad_account_id"`
	CampaignID  string         `json:"campaign_id"`
	AdSetID     string         `json:"adset_id"`
	Date        time.Time      `json:"date"`
	Metrics     InsightMetrics `json:"metrics"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NormalizeDay descarta a componente de horário e o fuso, ancorando a data em
// meia-noite UTC para evitar que o mesmo dia gere chaves distintas.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
