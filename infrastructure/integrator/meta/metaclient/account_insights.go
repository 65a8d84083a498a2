package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

type ResponseAccountInsights struct {
	Data   []metadomain.AccountInsight `json:"data"`
	Paging metadomain.Paging           `json:"paging"`
}

const accountInsightFields = "account_id,account_name,spend,impressions,clicks,reach,frequency,actions"

func timeRangeParam(period domain.DateRange) string {
	return fmt.Sprintf("{\"since\":%q,\"until\":%q}",
		period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
}

func (c *MetaClient) GetAccountInsights(ctx context.Context, accountID string, period domain.DateRange) (*metadomain.AccountInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", accountInsightFields)
	params.Add("level", "account")
	params.Add("time_range", timeRangeParam(period))
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

	var response ResponseAccountInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	// Período sem entrega: a API devolve a lista vazia, não um erro.
	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
