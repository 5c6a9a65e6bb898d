package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount representa uma conta de anúncios gerenciada pelo sistema.
// ExternalID é o identificador da conta na plataforma de anúncios (sem o prefixo "act_").
type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Currency   string          `json:"currency"`
	Status     AdAccountStatus `json:"status"`
}
