package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/pkg/logger"
	"github.com/tourbase/tourbase/pkg/redis"
)

// cacheTTL keeps domain routing lookups hot without letting out-of-band
// tenant edits go stale for long.
const cacheTTL = 5 * time.Minute

// CachedTenantRepository wraps a TenantRepository with a Redis read-through
// cache keyed by custom domain. Domain lookups happen on every public page
// request, so they get the cache; slug lookups pass through. Cache failures
// degrade to direct reads.
type CachedTenantRepository struct {
	inner TenantRepository
	cache *redis.Client
	log   *logger.Logger
}

// NewCachedTenantRepository creates a caching wrapper around inner
func NewCachedTenantRepository(inner TenantRepository, cache *redis.Client, log *logger.Logger) *CachedTenantRepository {
	return &CachedTenantRepository{inner: inner, cache: cache, log: log}
}

// GetBySlug retrieves a tenant by slug, bypassing the cache
func (r *CachedTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.inner.GetBySlug(ctx, slug)
}

// GetByDomain retrieves a tenant by custom domain, consulting the cache first
func (r *CachedTenantRepository) GetByDomain(ctx context.Context, dom string) (*domain.Tenant, error) {
	key := "tenant:domain:" + dom

	if cached, err := r.cache.Get(ctx, key).Bytes(); err == nil {
		tenant := &domain.Tenant{}
		if err := json.Unmarshal(cached, tenant); err == nil {
			return tenant, nil
		}
	}

	tenant, err := r.inner.GetByDomain(ctx, dom)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, nil
	}

	if data, err := json.Marshal(tenant); err == nil {
		if err := r.cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			r.log.Warn("failed to cache tenant domain lookup: " + err.Error())
		}
	}

	return tenant, nil
}
