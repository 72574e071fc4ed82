// Package cache provides caching implementations for the order search source.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/usecase"
)

// CachingOrderSource decorates an OrderSearchService with Redis caching.
// Results are keyed by the full search criteria.
type CachingOrderSource struct {
	inner     usecase.OrderSearchService
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.OrderSearchService = (*CachingOrderSource)(nil)

// NewCachingOrderSource decorates an OrderSearchService with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "orders".
func NewCachingOrderSource(rdb *redis.Client, ttl time.Duration, inner usecase.OrderSearchService, namespace string) *CachingOrderSource {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "orders"
	}
	return &CachingOrderSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search returns orders, checking cache first then falling back to the inner source.
func (c *CachingOrderSource) Search(ctx context.Context, criteria entity.SearchCriteria) ([]entity.OrderRecord, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, criteria)
	}

	key := c.cacheKey(criteria)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.OrderRecord
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the inner source
	out, err := c.inner.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops every cached search result in the namespace.
func (c *CachingOrderSource) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// cacheKey generates a cache key for a specific search.
func (c *CachingOrderSource) cacheKey(criteria entity.SearchCriteria) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s",
		c.namespace,
		keyPart(criteria.Period),
		keyPart(criteria.Status),
		keyPart(criteria.From),
		keyPart(criteria.To),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingOrderSource) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// keyPart query-escapes one criteria value so that distinct values never share a key.
// An empty value ("Select All") stays an empty segment. Escaping also removes ':' and the
// SCAN glob characters (*, ?, [, ]) from the segment.
func keyPart(s string) string {
	return url.QueryEscape(s)
}
