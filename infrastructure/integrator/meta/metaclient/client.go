package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	metadomain "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

type Client interface {
	GetAccountInsights(ctx context.Context, accountID string, period domain.DateRange) (*metadomain.AccountInsight, error)
	GetCampaignInsights(ctx context.Context, accountID string, period domain.DateRange) ([]metadomain.CampaignInsight, error)
	GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	GetLeads(ctx context.Context, accountID string, since time.Time) ([]metadomain.LeadgenEntry, error)
	RefreshToken() error
	EnsureValidToken() error
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
	limiter      *rate.Limiter
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeout) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.Meta.RequestsPerSec), 1),
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// doGet executa uma chamada GET à API respeitando o limite de requisições
// por segundo e o tratamento de token expirado. O chamador deve tratar
// ErrTokenRenewed refazendo a chamada.
func (c *MetaClient) doGet(ctx context.Context, requestURL string) ([]byte, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.TokenManager.HandleResponse(resp)
}

// retryOnRenewedToken refaz a chamada uma única vez quando o token foi
// renovado no meio da requisição original.
func retryOnRenewedToken(err error, retry func() ([]byte, error)) ([]byte, error) {
	if errors.Is(err, ErrTokenRenewed) {
		return retry()
	}
	return nil, err
}
