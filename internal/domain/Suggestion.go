package domain

import (
	"fmt"
	"time"
)

// SuggestionStatus é o ciclo de vida fechado de uma sugestão de escala.
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApplied  SuggestionStatus = "applied"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// IsTerminal indica se o status não admite mais transições.
func (s SuggestionStatus) IsTerminal() bool {
	return s == SuggestionStatusApplied || s == SuggestionStatusRejected
}

// TriggeredMetric registra uma métrica que violou o limite configurado no
// momento em que a sugestão foi criada.
type TriggeredMetric struct {
	Metric    MetricName `json:"metric"`
	Value     float64    `json:"value"`
	Threshold float64    `json:"threshold"`
}

// Suggestion é uma proposta de aumento de orçamento diário aguardando decisão
// humana. Nomes e identificadores são um snapshot desnormalizado do momento da
// criação, para auditoria e exibição. No máximo uma sugestão pendente pode
// existir por ad set.
type Suggestion struct {
	ID           string `json:"id"`
	AccountID    string `json:"account_id"`
	AdAccountID  string `json:"ad_account_id"`
	AccountName  string `json:"account_name"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdSetID      string `json:"adset_id"`
	AdSetName    string `json:"adset_name"`

	Currency             string  `json:"currency"`
	CurrentDailyBudget   float64 `json:"current_daily_budget"`
	SuggestedDailyBudget float64 `json:"suggested_daily_budget"`
	ScalePercent         float64 `json:"scale_percent"`

	TriggeredMetrics []TriggeredMetric `json:"triggered_metrics"`
	MetricsExceeded  int               `json:"metrics_exceeded"`

	Note     *string `json:"note,omitempty"`
	DeepLink string  `json:"deep_link"`

	Status    SuggestionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AdSetDeepLink monta o link direto para o ad set no gerenciador de anúncios
// da plataforma.
func AdSetDeepLink(adAccountID, adsetID string) string {
	return fmt.Sprintf(
		"https://adsmanager.facebook.com/adsmanager/manage/adsets?act=%s&selected_adset_ids=%s",
		adAccountID,
		adsetID,
	)
}

// AnalysisResult resume a execução da análise para uma conta de anúncios.
type AnalysisResult struct {
	AccountID          string   `json:"account_id"`
	AdSetsProcessed    int      `json:"adsets_processed"`
	SuggestionsCreated int      `json:"suggestions_created"`
	Errors             []string `json:"errors,omitempty"`
}

// BatchAnalysisResult resume a execução da análise para todas as contas ativas.
type BatchAnalysisResult struct {
	AccountsProcessed int               `json:"accounts_processed"`
	Results           []*AnalysisResult `json:"results"`
	Errors            []string          `json:"errors,omitempty"`
}
