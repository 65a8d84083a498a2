package meta

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/metaclient"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetInsightSummary busca e normaliza as métricas agregadas da conta no
// período dado. Período sem entrega devolve um resumo zerado, não um erro.
func (s *MetaIntegrator) GetInsightSummary(ctx context.Context, accountID string, period domain.DateRange) (*domain.InsightSummary, error) {
	row, err := s.Client.GetAccountInsights(ctx, accountID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get account insights from API")
		return nil, &domain.ProviderError{Op: "insights.summary", Err: err}
	}

	summary := FactoryInsightSummary(accountID, row)

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"spend":      summary.Spend,
		"leads":      summary.Leads,
	}).Debug("insights: successfully retrieved account metrics")

	return summary, nil
}

// GetCampaignRows busca e normaliza as métricas por campanha no período dado.
func (s *MetaIntegrator) GetCampaignRows(ctx context.Context, accountID string, period domain.DateRange) ([]*domain.CampaignRow, error) {
	insights, err := s.Client.GetCampaignInsights(ctx, accountID, period)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, &domain.ProviderError{Op: "insights.campaigns", Err: err}
	}

	campaigns, err := s.Client.GetCampaigns(ctx, accountID)
	if err != nil {
		// Sem a listagem as linhas ficam sem status de veiculação, mas o
		// relatório ainda sai.
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("insights: failed to list campaigns, rows will have no status")
		campaigns = nil
	}

	return FactoryCampaignRows(insights, campaigns), nil
}

// GetAccountStatus busca o status de cobrança da conta de anúncios.
func (s *MetaIntegrator) GetAccountStatus(ctx context.Context, accountID string) (domain.AccountStatus, error) {
	account, err := s.Client.GetAdAccount(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account status from API")
		return domain.AccountStatusUnknown, &domain.ProviderError{Op: "account.status", Err: err}
	}

	return domain.AccountStatusFromCode(account.AccountStatus), nil
}

// FetchLeads busca os leads criados desde o instante dado e os converte para
// o formato do domínio. O status e o tipo ficam por conta da mescla.
func (s *MetaIntegrator) FetchLeads(ctx context.Context, accountID string, since time.Time) ([]*domain.Lead, error) {
	entries, err := s.Client.GetLeads(ctx, accountID, since)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("leads: failed to get leads from API")
		return nil, &domain.ProviderError{Op: "leads.fetch", Err: err}
	}

	leads := make([]*domain.Lead, 0, len(entries))
	for i := range entries {
		entry := &entries[i]

		createdAt, err := time.Parse(time.RFC3339, entry.CreatedTime)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"lead_id": entry.ID,
				"value":   entry.CreatedTime,
			}).Warn("leads: unparseable created_time, skipping lead")
			continue
		}

		leads = append(leads, &domain.Lead{
			ID:           entry.ID,
			Name:         entry.Field("full_name"),
			Phone:        entry.Field("phone_number"),
			CreatedAt:    createdAt,
			Source:       entry.Platform,
			CampaignName: entry.CampaignName,
		})
	}

	return leads, nil
}
