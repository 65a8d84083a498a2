package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

type ResponseCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

const campaignInsightFields = "campaign_id,campaign_name,spend,impressions,clicks,frequency,actions"

func (c *MetaClient) GetCampaignInsights(ctx context.Context, accountID string, period domain.DateRange) ([]metadomain.CampaignInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", campaignInsightFields)
	params.Add("level", "campaign")
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

	var response ResponseCampaignInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}

func (c *MetaClient) GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status")
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

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
