package domain

// SyncResult resume a sincronização de uma conta: quantas linhas vieram no
// export, quantos fatos foram persistidos e quantos ad sets tiveram os
// metadados atualizados. Erros por linha não abortam o lote e ficam listados.
type SyncResult struct {
	AccountID      string   `json:"account_id"`
	RecordsFetched int      `json:"records_fetched"`
	FactsStored    int      `json:"facts_stored"`
	AdSetsSynced   int      `json:"adsets_synced"`
	Errors         []string `json:"errors,omitempty"`
}
