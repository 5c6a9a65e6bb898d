package metadomain

import (
	"errors"
	"fmt"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// Erros sentinela propagados para fora do integrador. Precisam sobreviver a
// wrapping para que falhas de credencial não virem erro genérico de sync.
var (
	// ErrTokenExpired indica que o token de acesso expirou e pode ser
	// renovado sem intervenção do usuário
	ErrTokenExpired = errors.New("token de acesso expirado")

	// ErrNeedsReconnect indica que a conexão com a plataforma precisa ser
	// refeita pelo usuário (token revogado ou permissão removida)
	ErrNeedsReconnect = errors.New("conta precisa ser reconectada à plataforma")
)

// ExternalServiceError representa uma falha da API externa (transporte,
// resposta 5xx ou payload sem os campos esperados).
type ExternalServiceError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *ExternalServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("erro no serviço externo (%s, status %d): %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("erro no serviço externo (%s): %v", e.Operation, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalServiceError cria um ExternalServiceError para a operação dada.
func NewExternalServiceError(operation string, statusCode int, err error) *ExternalServiceError {
	return &ExternalServiceError{Operation: operation, StatusCode: statusCode, Err: err}
}

// NewReportFailedError descreve um relatório que terminou em falha (explícita
// ou por exaustão do polling).
func NewReportFailedError(reportRunID string) error {
	return fmt.Errorf("relatório %s terminou com falha ou esgotou o orçamento de polling", reportRunID)
}
