package metadomain

// ReportRunStatus é o status bruto reportado pela API para um relatório
// assíncrono. Os valores seguem o campo async_status da Graph API.
type ReportRunStatus string

const (
	ReportRunStatusNotStarted ReportRunStatus = "Job Not Started"
	ReportRunStatusStarted    ReportRunStatus = "Job Started"
	ReportRunStatusRunning    ReportRunStatus = "Job Running"
	ReportRunStatusCompleted  ReportRunStatus = "Job Completed"
	ReportRunStatusFailed     ReportRunStatus = "Job Failed"
	ReportRunStatusSkipped    ReportRunStatus = "Job Skipped"
)

// IsTerminal indica se o job não vai mais mudar de status.
func (s ReportRunStatus) IsTerminal() bool {
	return s == ReportRunStatusCompleted || s == ReportRunStatusFailed || s == ReportRunStatusSkipped
}

// ReportRunResponse é a resposta da criação de um relatório assíncrono.
type ReportRunResponse struct {
	ReportRunID string `json:"report_run_id"`
}

// ReportRunStatusResponse é a resposta da consulta de status de um relatório.
type ReportRunStatusResponse struct {
	ID                     string          `json:"id"`
	AsyncStatus            ReportRunStatus `json:"async_status"`
	AsyncPercentCompletion int             `json:"async_percent_completion"`
}

// Action é um par tipo-de-ação/valor usado em métricas derivadas como
// cost_per_action_type e purchase_roas.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// ReportRow é uma linha bruta do export tabular de um relatório de insights
// em nível de ad set. Campos numéricos chegam como string da API.
type ReportRow struct {
	AccountID        string   `json:"account_id"`
	AccountName      string   `json:"account_name"`
	CampaignID       string   `json:"campaign_id"`
	CampaignName     string   `json:"campaign_name"`
	AdSetID          string   `json:"adset_id"`
	AdSetName        string   `json:"adset_name"`
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
	Impressions      string   `json:"impressions"`
	Clicks           string   `json:"clicks"`
	Spend            string   `json:"spend"`
	CPM              string   `json:"cpm"`
	CPC              string   `json:"cpc"`
	CTR              string   `json:"ctr"`
	Reach            string   `json:"reach"`
	Frequency        string   `json:"frequency"`
	LinkCTR          string   `json:"inline_link_click_ctr"`
	CostPerLinkClick string   `json:"cost_per_inline_link_click"`
	CostPerActions   []Action `json:"cost_per_action_type"`
	PurchaseROAS     []Action `json:"purchase_roas"`
}

// Cursors e Paging seguem o envelope de paginação da Graph API.
type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// CampaignRef é a expansão campaign{id,name} em consultas de ad sets.
type CampaignRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdSetPayload é um ad set como retornado pela API, com orçamentos em
// unidades mínimas da moeda (centavos) e timestamps ISO 8601.
type AdSetPayload struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Status          string      `json:"status"`
	EffectiveStatus string      `json:"effective_status"`
	Campaign        CampaignRef `json:"campaign"`
	DailyBudget     string      `json:"daily_budget"`
	LifetimeBudget  string      `json:"lifetime_budget"`
	StartTime       string      `json:"start_time"`
	EndTime         string      `json:"end_time"`
	UpdatedTime     string      `json:"updated_time"`
}
