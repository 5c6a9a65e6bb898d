package domain

import (
	"time"
)

// AdSetStatus é texto livre vindo da plataforma; apenas "ACTIVE" tem
// semântica para a análise.
const AdSetStatusActive = "ACTIVE"

// AdSet guarda a configuração corrente de um ad set, sincronizada da
// plataforma de anúncios. Única por (ad_account_id, adset_id).
type AdSet struct {
	ID           int64      `json:"id"`
	AccountID    string     `json:"account_id"`
	AdAccountID  string     `json:"ad_account_id"`
	AdSetID      string     `json:"adset_id"`
	Name         string     `json:"name"`
	CampaignID   string     `json:"campaign_id"`
	CampaignName string     `json:"campaign_name"`
	Status       string     `json:"status"`
	Currency     string     `json:"currency"`

	// Orçamentos em unidades da moeda (não em centavos). No máximo um deles
	// dirige o escalonamento; ad sets somente com lifetime budget ficam fora
	// do escalonamento automático.
	DailyBudget    *float64 `json:"daily_budget"`
	LifetimeBudget *float64 `json:"lifetime_budget"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	// LastScaledAt é preenchido apenas quando uma sugestão de escala é
	// aprovada e zera a janela de recorrência.
	LastScaledAt *time.Time `json:"last_scaled_at"`

	// UpdatedTime é o timestamp de origem da plataforma; SyncedAt é o
	// momento local da última sincronização.
	UpdatedTime *time.Time `json:"updated_time"`
	SyncedAt    time.Time  `json:"synced_at"`
}

// IsActive indica se o ad set está ativo na plataforma.
func (a *AdSet) IsActive() bool {
	return a.Status == AdSetStatusActive
}

// IsScalable indica se o ad set pode receber sugestões automáticas de escala.
func (a *AdSet) IsScalable() bool {
	return a.IsActive() && a.DailyBudget != nil && *a.DailyBudget > 0
}
