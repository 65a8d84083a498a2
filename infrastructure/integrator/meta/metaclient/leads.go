package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/domain"
)

type ResponseLeads struct {
	Data   []metadomain.LeadgenEntry `json:"data"`
	Paging metadomain.Paging         `json:"paging"`
}

const leadFields = "id,created_time,campaign_name,platform,field_data"

func (c *MetaClient) GetLeads(ctx context.Context, accountID string, since time.Time) ([]metadomain.LeadgenEntry, error) {
	baseURL := fmt.Sprintf("%s/act_%s/leads", c.Cfg.Meta.URL, accountID)

	filtering := fmt.Sprintf("[{\"field\":\"time_created\",\"operator\":\"GREATER_THAN\",\"value\":%d}]", since.Unix())

	params := url.Values{}
	params.Add("fields", leadFields)
	params.Add("filtering", filtering)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	body, err := c.doGet(ctx, requestURL)
	if err != nil {
		body, err = retryOnRenewedToken(err, func() ([]byte, error) {
			return c.doGet(ctx, requestURL)
		})
		if err != nil {
			return nil, err
		}
	}

	var response ResponseLeads
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
