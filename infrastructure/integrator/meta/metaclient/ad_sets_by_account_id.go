package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/domain"
)

const adSetFields = "id,name,status,effective_status,campaign{id,name}," +
	"daily_budget,lifetime_budget,start_time,end_time,updated_time"

// ListAdSets busca todos os ad sets da conta, seguindo a paginação por cursor.
func (c *MetaClient) ListAdSets(ctx context.Context, accessToken, adAccountID string) ([]metadomain.AdSetPayload, error) {
	params := url.Values{}
	params.Add("fields", adSetFields)
	params.Add("limit", "200")
	params.Add("access_token", accessToken)

	reqURL := fmt.Sprintf("%s/act_%s/adsets?%s", c.cfg.Meta.URL, adAccountID, params.Encode())

	adSets := make([]metadomain.AdSetPayload, 0)

	for reqURL != "" {
		body, err := c.doRequest(ctx, "list_adsets", "GET", reqURL)
		if err != nil {
			return nil, err
		}

		var page struct {
			Data   []metadomain.AdSetPayload `json:"data"`
			Paging metadomain.Paging         `json:"paging"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, metadomain.NewExternalServiceError("list_adsets", 0, err)
		}

		adSets = append(adSets, page.Data...)
		reqURL = page.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": adAccountID,
		"adsets":        len(adSets),
	}).Debug("Ad sets da conta carregados")

	return adSets, nil
}
