package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/storage"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

// cacheKeyPrefix é o prefixo de todas as entradas de cache no armazém
// chave-valor. A chave composta tipada (projeto + escopo) só vira string
// aqui, na fronteira do armazenamento.
const cacheKeyPrefix = "cache:"

func cacheKey(projectID string, scope domain.CacheScope) string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, projectID, scope)
}

func projectCachePrefix(projectID string) string {
	return fmt.Sprintf("%s%s:", cacheKeyPrefix, projectID)
}

type MetricsCacheRepository interface {
	// Get devolve a entrada fresca para (projeto, escopo) ou nil em caso de
	// miss. Uma entrada expirada nunca é devolvida, nem parcialmente.
	Get(ctx context.Context, projectID string, scope domain.CacheScope, now time.Time) (*domain.MetaCacheEntry, error)
	// Put sobrescreve incondicionalmente a entrada, registrando FetchedAt.
	Put(ctx context.Context, projectID string, scope domain.CacheScope, period domain.DateRange, payload []byte, ttlSeconds int) error
	// Invalidate remove explicitamente uma entrada (ex.: reconfiguração da
	// conta de anúncios torna o cache incorreto).
	Invalidate(ctx context.Context, projectID string, scope domain.CacheScope) error
	// InvalidateProject remove todas as entradas do projeto.
	InvalidateProject(ctx context.Context, projectID string) error
	// DeleteOlderThan aplica a evicção dura por idade de gravação.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type metricsCacheRepository struct {
	kv storage.KVStore
}

func NewMetricsCacheRepository(kv storage.KVStore) MetricsCacheRepository {
	return &metricsCacheRepository{kv: kv}
}

func (r *metricsCacheRepository) Get(ctx context.Context, projectID string, scope domain.CacheScope, now time.Time) (*domain.MetaCacheEntry, error) {
	raw, err := r.kv.Get(ctx, cacheKey(projectID, scope))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	entry := &domain.MetaCacheEntry{}
	if err := json.Unmarshal(raw, entry); err != nil {
		// Entrada corrompida conta como miss; a próxima escrita a corrige.
		logrus.WithFields(logrus.Fields{
			"project_id": projectID,
			"scope":      scope.String(),
			"error":      err.Error(),
		}).Warn("cache: entrada ilegível, tratando como miss")
		return nil, nil
	}

	if !entry.Fresh(now) {
		return nil, nil
	}

	return entry, nil
}

func (r *metricsCacheRepository) Put(ctx context.Context, projectID string, scope domain.CacheScope, period domain.DateRange, payload []byte, ttlSeconds int) error {
	entry := &domain.MetaCacheEntry{
		ProjectID:  projectID,
		Scope:      scope,
		Period:     period,
		FetchedAt:  time.Now().UTC(),
		TTLSeconds: ttlSeconds,
		Payload:    payload,
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return &domain.StorageError{Op: "cache.put", Err: err}
	}

	return r.kv.Put(ctx, cacheKey(projectID, scope), raw)
}

func (r *metricsCacheRepository) Invalidate(ctx context.Context, projectID string, scope domain.CacheScope) error {
	return r.kv.Delete(ctx, cacheKey(projectID, scope))
}

func (r *metricsCacheRepository) InvalidateProject(ctx context.Context, projectID string) error {
	keys, err := r.kv.ListKeys(ctx, projectCachePrefix(projectID))
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := r.kv.Delete(ctx, key); err != nil {
			return err
		}
	}

	return nil
}

func (r *metricsCacheRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.kv.DeleteOlderThan(ctx, cacheKeyPrefix, cutoff)
}
