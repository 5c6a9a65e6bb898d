package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-scaler-api/internal/config"
)

type Client interface {
	// CreateAdSetReport cria um relatório assíncrono de insights em nível de
	// ad set para o período informado e retorna o handle opaco do job
	CreateAdSetReport(ctx context.Context, accessToken, adAccountID string, since, until time.Time) (string, error)

	// PollReportUntilDone consulta o status do relatório em intervalo fixo
	// até um estado terminal ou o esgotamento do orçamento de tentativas
	PollReportUntilDone(ctx context.Context, accessToken, reportRunID string) (metadomain.ReportRunStatus, error)

	// FetchReportResults baixa o export tabular de um relatório concluído
	FetchReportResults(ctx context.Context, accessToken, reportRunID string) ([]metadomain.ReportRow, error)

	// ListAdSets busca a configuração corrente dos ad sets da conta
	ListAdSets(ctx context.Context, accessToken, adAccountID string) ([]metadomain.AdSetPayload, error)
}

// MetaClient fala com a Graph API usando um único *http.Client injetado e com
// timeout configurado. Nenhum estado local é mantido entre chamadas — o
// report_run_id é o único estado carregado, e fica com o chamador.
type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Meta.HTTPTimeout(),
		},
	}
}

// NewClientWithHTTPClient permite injetar um cliente HTTP customizado (testes).
func NewClientWithHTTPClient(cfg *config.Config, httpClient *http.Client) Client {
	return &MetaClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// doRequest executa a requisição e normaliza o tratamento de erros da API,
// incluindo a detecção de token expirado no corpo de erro.
func (c *MetaClient) doRequest(ctx context.Context, operation, method, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, metadomain.NewExternalServiceError(operation, 0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metadomain.NewExternalServiceError(operation, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, metadomain.NewExternalServiceError(operation, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.IsTokenExpired() {
				return nil, fmt.Errorf("%s: %w", operation, metadomain.ErrTokenExpired)
			}
			return nil, metadomain.NewExternalServiceError(
				operation,
				resp.StatusCode,
				fmt.Errorf("%s (code %d)", errResp.Error.Message, errResp.Error.Code),
			)
		}

		return nil, metadomain.NewExternalServiceError(
			operation,
			resp.StatusCode,
			fmt.Errorf("resposta inesperada: %s", string(body)),
		)
	}

	return body, nil
}
