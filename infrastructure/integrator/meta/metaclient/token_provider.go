package metaclient

import (
	"fmt"

	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
)

// TokenProvider entrega um token de acesso válido para a conta. A troca e o
// armazenamento de tokens (OAuth) vivem fora deste serviço; aqui só
// consumimos. Implementações devem retornar metadomain.ErrTokenExpired ou
// metadomain.ErrNeedsReconnect (possivelmente embrulhados) para que o sync
// consiga distinguir falha de credencial de falha genérica.
type TokenProvider interface {
	GetValidAccessToken(accountID string) (string, error)
}

// StaticTokenProvider usa um único token de longa duração para todas as
// contas. Suficiente para operação com um Business Manager só.
type StaticTokenProvider struct {
	accessToken string
}

func NewStaticTokenProvider(accessToken string) *StaticTokenProvider {
	return &StaticTokenProvider{accessToken: accessToken}
}

// GetValidAccessToken retorna o token configurado. Sem token a conta está
// efetivamente desconectada, e o sync trata isso como erro de credencial.
func (p *StaticTokenProvider) GetValidAccessToken(accountID string) (string, error) {
	if p.accessToken == "" {
		return "", fmt.Errorf("conta %s sem token de acesso configurado: %w", accountID, metadomain.ErrNeedsReconnect)
	}
	return p.accessToken, nil
}
