package insighting

import (
	"context"
	"time"

	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

// Provider define a fronteira com o integrador de métricas de anúncios
type Provider interface {
	GetInsightSummary(ctx context.Context, accountID string, period domain.DateRange) (*domain.InsightSummary, error)
	GetCampaignRows(ctx context.Context, accountID string, period domain.DateRange) ([]*domain.CampaignRow, error)
	GetAccountStatus(ctx context.Context, accountID string) (domain.AccountStatus, error)
}

// SummaryResult é o resumo de métricas resolvido para um projeto e período
type SummaryResult struct {
	Summary   *domain.InsightSummary `json:"summary"`
	KPI       domain.KPIType         `json:"kpi"`
	Period    *domain.ResolvedPeriod `json:"period"`
	FromCache bool                   `json:"from_cache"`
	FetchedAt time.Time              `json:"fetched_at"`
}

// CampaignsResult são as linhas por campanha resolvidas para um projeto e período
type CampaignsResult struct {
	Campaigns []*domain.CampaignRow  `json:"campaigns"`
	Period    *domain.ResolvedPeriod `json:"period"`
	FromCache bool                   `json:"from_cache"`
	FetchedAt time.Time              `json:"fetched_at"`
}

// Insighter define a interface para obter métricas com cache
type Insighter interface {
	GetSummary(ctx context.Context, project *domain.Project, key domain.PeriodKey, custom *domain.DateRange) (*SummaryResult, error)
	GetCampaigns(ctx context.Context, project *domain.Project, key domain.PeriodKey, custom *domain.DateRange) (*CampaignsResult, error)
	// InvalidateProject descarta todo o cache do projeto. Necessário quando a
	// conta de anúncios vinculada muda.
	InvalidateProject(ctx context.Context, projectID string) error
}
