package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// MetricKind identifica o tipo de métrica de uma entrada de cache.
type MetricKind string

const (
	MetricKindSummary   MetricKind = "summary"
	MetricKindCampaigns MetricKind = "campaigns"
)

// CacheScope é a chave composta tipada de uma entrada de cache: qual métrica
// e qual período ela representa. A serialização em string acontece apenas na
// fronteira do armazenamento.
type CacheScope struct {
	Kind   MetricKind `json:"kind"`
	Period PeriodKey  `json:"period"`
}

func (s CacheScope) String() string {
	return fmt.Sprintf("%s:%s", s.Kind, s.Period)
}

// MetaCacheEntry é uma entrada imutável do cache de métricas. Um refresh
// grava uma nova entrada para a mesma chave (semântica de sobrescrita).
type MetaCacheEntry struct {
	ProjectID  string          `json:"project_id"`
	Scope      CacheScope      `json:"scope"`
	Period     DateRange       `json:"period"`
	FetchedAt  time.Time       `json:"fetched_at"`
	TTLSeconds int             `json:"ttl_seconds"`
	Payload    json.RawMessage `json:"payload"`
}

// Fresh informa se a entrada ainda está dentro do TTL no instante dado.
// Staleness é um predicado de leitura, nunca verificado na escrita.
func (e *MetaCacheEntry) Fresh(now time.Time) bool {
	if e == nil {
		return false
	}
	return now.Sub(e.FetchedAt) <= time.Duration(e.TTLSeconds)*time.Second
}

// InsightSummary são as métricas agregadas de uma conta em um período, já
// normalizadas. Métricas derivadas com denominador zero ficam nil para que a
// formatação renderize "—" em vez de 0 ou NaN.
type InsightSummary struct {
	AccountID   string   `json:"account_id"`
	Spend       float64  `json:"spend"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Reach       int      `json:"reach"`
	Leads       int      `json:"leads"`
	Messages    int      `json:"messages"`
	Purchases   int      `json:"purchases"`
	CTR         *float64 `json:"ctr"`
	CPC         *float64 `json:"cpc"`
	CPA         *float64 `json:"cpa"`
	Frequency   *float64 `json:"frequency"`
}

// CampaignRow são as métricas normalizadas de uma campanha.
type CampaignRow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Spend       float64  `json:"spend"`
	Impressions int      `json:"impressions"`
	Clicks      int      `json:"clicks"`
	Leads       int      `json:"leads"`
	Messages    int      `json:"messages"`
	CTR         *float64 `json:"ctr"`
	CPC         *float64 `json:"cpc"`
	CPA         *float64 `json:"cpa"`
	Frequency   *float64 `json:"frequency"`
}
