package metaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
)

// Campos solicitados no relatório de insights por ad set. A lista cobre todas
// as métricas acompanhadas pela análise de sugestões.
const reportFields = "account_id,account_name,campaign_id,campaign_name,adset_id,adset_name," +
	"impressions,clicks,spend,cpm,cpc,ctr,reach,frequency," +
	"inline_link_click_ctr,cost_per_inline_link_click,cost_per_action_type,purchase_roas"

func (c *MetaClient) CreateAdSetReport(ctx context.Context, accessToken, adAccountID string, since, until time.Time) (string, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.cfg.Meta.URL, adAccountID)

	timeRange := fmt.Sprintf(`{"since":"%s","until":"%s"}`, since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", reportFields)
	params.Add("level", "adset")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("filtering", `[{"field":"adset.effective_status","operator":"IN","value":["ACTIVE"]}]`)
	params.Add("access_token", accessToken)

	body, err := c.doRequest(ctx, "create_report", "POST", baseURL+"?"+params.Encode())
	if err != nil {
		return "", err
	}

	var response metadomain.ReportRunResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", metadomain.NewExternalServiceError("create_report", 0, err)
	}

	if response.ReportRunID == "" {
		return "", metadomain.NewExternalServiceError("create_report", 0, errors.New("resposta sem report_run_id"))
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": adAccountID,
		"report_run_id": response.ReportRunID,
		"since":         since.Format(time.DateOnly),
		"until":         until.Format(time.DateOnly),
	}).Info("Relatório assíncrono de insights criado")

	return response.ReportRunID, nil
}

// getReportRunStatus consulta o status atual do job de relatório.
func (c *MetaClient) getReportRunStatus(ctx context.Context, accessToken, reportRunID string) (metadomain.ReportRunStatus, error) {
	params := url.Values{}
	params.Add("access_token", accessToken)

	reqURL := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, reportRunID, params.Encode())

	body, err := c.doRequest(ctx, "report_status", "GET", reqURL)
	if err != nil {
		return "", err
	}

	var response metadomain.ReportRunStatusResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", metadomain.NewExternalServiceError("report_status", 0, err)
	}

	return response.AsyncStatus, nil
}

// PollReportUntilDone consulta o job em intervalo fixo até "Job Completed" ou
// "Job Failed". Falhas transitórias de uma tentativa consomem o mesmo
// orçamento de tentativas em vez de abortar o polling. O esgotamento do
// orçamento retorna um status sintético de falha, sem erro, para que o
// chamador trate a exaustão igual a uma falha explícita do job.
func (c *MetaClient) PollReportUntilDone(ctx context.Context, accessToken, reportRunID string) (metadomain.ReportRunStatus, error) {
	interval := c.cfg.Meta.ReportPollInterval()
	maxAttempts := c.cfg.Meta.ReportPollMaxAttempts

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, err := c.getReportRunStatus(ctx, accessToken, reportRunID)
		if err != nil {
			// Token expirado não é transitório: aborta e propaga
			if errors.Is(err, metadomain.ErrTokenExpired) || errors.Is(err, metadomain.ErrNeedsReconnect) {
				return "", err
			}

			logrus.WithFields(logrus.Fields{
				"report_run_id": reportRunID,
				"attempt":       attempt,
				"max_attempts":  maxAttempts,
				"error":         err.Error(),
			}).Warn("Falha transitória ao consultar status do relatório")
		} else {
			if status.IsTerminal() {
				logrus.WithFields(logrus.Fields{
					"report_run_id": reportRunID,
					"status":        string(status),
					"attempts":      attempt,
				}).Info("Relatório assíncrono atingiu estado terminal")

				if status == metadomain.ReportRunStatusCompleted {
					return metadomain.ReportRunStatusCompleted, nil
				}
				return metadomain.ReportRunStatusFailed, nil
			}

			logrus.WithFields(logrus.Fields{
				"report_run_id": reportRunID,
				"status":        string(status),
				"attempt":       attempt,
			}).Debug("Relatório ainda em processamento")
		}

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	logrus.WithFields(logrus.Fields{
		"report_run_id": reportRunID,
		"max_attempts":  maxAttempts,
	}).Warn("Orçamento de tentativas do polling esgotado, tratando relatório como falho")

	return metadomain.ReportRunStatusFailed, nil
}

// FetchReportResults baixa todas as páginas do export. Não há retry aqui: em
// falha de transporte o chamador decide se refaz o polling ou abandona o job.
func (c *MetaClient) FetchReportResults(ctx context.Context, accessToken, reportRunID string) ([]metadomain.ReportRow, error) {
	params := url.Values{}
	params.Add("access_token", accessToken)
	params.Add("limit", "500")

	reqURL := fmt.Sprintf("%s/%s/insights?%s", c.cfg.Meta.URL, reportRunID, params.Encode())

	rows := make([]metadomain.ReportRow, 0)

	for reqURL != "" {
		body, err := c.doRequest(ctx, "report_results", "GET", reqURL)
		if err != nil {
			return nil, err
		}

		var page struct {
			Data   []metadomain.ReportRow `json:"data"`
			Paging metadomain.Paging      `json:"paging"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, metadomain.NewExternalServiceError("report_results", 0, err)
		}

		rows = append(rows, page.Data...)
		reqURL = page.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"report_run_id": reportRunID,
		"records":       len(rows),
	}).Info("Export do relatório baixado")

	return rows, nil
}
