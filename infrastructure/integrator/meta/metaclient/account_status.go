package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/act_%s", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,account_status,disable_reason")
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

	var account metadomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &account, nil
}
