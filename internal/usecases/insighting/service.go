package insighting

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service resolve métricas com a política cache-first: entrada fresca no
// cache responde na hora; miss ou entrada expirada dispara a busca no
// provedor e a sobrescrita do cache. Períodos custom nunca são cacheados.
type Service struct {
	cfg      *config.Config
	provider Provider
	cache    repository.MetricsCacheRepository
	now      func() time.Time
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, provider Provider, cache repository.MetricsCacheRepository) *Service {
	return &Service{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		now:      time.Now,
	}
}

func (s *Service) GetSummary(ctx context.Context, project *domain.Project, key domain.PeriodKey, custom *domain.DateRange) (*SummaryResult, error) {
	resolved, err := domain.ResolvePeriod(key, project.Timezone, s.now(), custom)
	if err != nil {
		return nil, err
	}

	scope := domain.CacheScope{Kind: domain.MetricKindSummary, Period: resolved.Key}

	if cacheable(key) {
		if entry := s.lookup(ctx, project.ID, scope); entry != nil {
			summary := &domain.InsightSummary{}
			if err := json.Unmarshal(entry.Payload, summary); err == nil {
				return &SummaryResult{
					Summary:   summary,
					KPI:       domain.SelectKPI(project.KPI, summary),
					Period:    resolved,
					FromCache: true,
					FetchedAt: entry.FetchedAt,
				}, nil
			}

			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"scope":      scope.String(),
			}).Warn("insights: cached payload no longer decodes, refetching")
		}
	}

	summary, err := s.provider.GetInsightSummary(ctx, project.AccountID, resolved.Period)
	if err != nil {
		// Falha do provedor nunca entra no cache.
		return nil, err
	}

	if cacheable(key) {
		s.store(ctx, project.ID, scope, resolved.Period, summary, s.cfg.Cache.SummaryTTLSeconds)
	}

	return &SummaryResult{
		Summary:   summary,
		KPI:       domain.SelectKPI(project.KPI, summary),
		Period:    resolved,
		FromCache: false,
		FetchedAt: s.now(),
	}, nil
}

func (s *Service) GetCampaigns(ctx context.Context, project *domain.Project, key domain.PeriodKey, custom *domain.DateRange) (*CampaignsResult, error) {
	resolved, err := domain.ResolvePeriod(key, project.Timezone, s.now(), custom)
	if err != nil {
		return nil, err
	}

	scope := domain.CacheScope{Kind: domain.MetricKindCampaigns, Period: resolved.Key}

	if cacheable(key) {
		if entry := s.lookup(ctx, project.ID, scope); entry != nil {
			campaigns := make([]*domain.CampaignRow, 0)
			if err := json.Unmarshal(entry.Payload, &campaigns); err == nil {
				return &CampaignsResult{
					Campaigns: campaigns,
					Period:    resolved,
					FromCache: true,
					FetchedAt: entry.FetchedAt,
				}, nil
			}

			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"scope":      scope.String(),
			}).Warn("insights: cached payload no longer decodes, refetching")
		}
	}

	campaigns, err := s.provider.GetCampaignRows(ctx, project.AccountID, resolved.Period)
	if err != nil {
		return nil, err
	}

	if cacheable(key) {
		s.store(ctx, project.ID, scope, resolved.Period, campaigns, s.cfg.Cache.CampaignsTTLSeconds)
	}

	return &CampaignsResult{
		Campaigns: campaigns,
		Period:    resolved,
		FromCache: false,
		FetchedAt: s.now(),
	}, nil
}

func (s *Service) InvalidateProject(ctx context.Context, projectID string) error {
	return s.cache.InvalidateProject(ctx, projectID)
}

// cacheable informa se a chave de período admite cache. Períodos custom têm
// chave aberta e ficariam órfãos no armazém.
func cacheable(key domain.PeriodKey) bool {
	return key != domain.PeriodCustom
}

// lookup lê o cache tolerando falha de leitura: indisponibilidade do armazém
// degrada para uma busca no provedor, não para um erro ao chamador.
func (s *Service) lookup(ctx context.Context, projectID string, scope domain.CacheScope) *domain.MetaCacheEntry {
	entry, err := s.cache.Get(ctx, projectID, scope, s.now())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": projectID,
			"scope":      scope.String(),
			"error":      err.Error(),
		}).Warn("insights: cache read failed, falling back to provider")
		return nil
	}

	return entry
}

// store grava o resultado no cache. Falha de escrita não invalida a leitura
// que acabou de acontecer.
func (s *Service) store(ctx context.Context, projectID string, scope domain.CacheScope, period domain.DateRange, value interface{}, ttlSeconds int) {
	payload, err := json.Marshal(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": projectID,
			"scope":      scope.String(),
			"error":      err.Error(),
		}).Warn("insights: failed to serialize payload for cache")
		return
	}

	if err := s.cache.Put(ctx, projectID, scope, period, payload, ttlSeconds); err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": projectID,
			"scope":      scope.String(),
			"error":      err.Error(),
		}).Warn("insights: cache write failed")
	}
}
