// Package di provides dependency injection factories for creating application components.
package di

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"order_search/internal/app/config"
	"order_search/internal/feature/ordersearch/adapters"
	"order_search/internal/feature/ordersearch/usecase"
	"order_search/internal/platform/cache"
	"order_search/internal/platform/externalapi/orderapi"
	infrahttp "order_search/internal/platform/http"
	"order_search/internal/shared/ratelimiter"
)

// ErrDatabaseRequired is returned when ORDER_SOURCE=database but no DB connection was opened.
var ErrDatabaseRequired = errors.New("database connection required")

// NewOrderAPI creates a fully configured OrderAPI with HTTP client and rate limiter.
func NewOrderAPI(cfg orderapi.Config) *orderapi.OrderAPI {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	var limiter ratelimiter.Limiter
	if cfg.RequestsPerMin > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.RequestsPerMin, time.Minute)
	}
	return orderapi.NewOrderAPI(cfg, httpClient, limiter)
}

// NewOrderSource creates the OrderSearchService selected by cfg.OrderSource.
// The database and remote sources are wrapped with the Redis cache; a nil rdb disables caching.
// The sample source is returned as is.
func NewOrderSource(cfg config.Config, gdb *gorm.DB, rdb *redis.Client) (usecase.OrderSearchService, error) {
	var inner usecase.OrderSearchService
	switch cfg.OrderSource {
	case config.SourceSample, "":
		return adapters.NewSampleOrders(), nil
	case config.SourceDatabase:
		if gdb == nil {
			return nil, ErrDatabaseRequired
		}
		inner = adapters.NewOrderRepository(gdb)
	case config.SourceRemote:
		inner = NewOrderAPI(cfg.OrderAPI)
	default:
		return nil, fmt.Errorf("%w: unknown ORDER_SOURCE %q", config.ErrInvalidConfig, cfg.OrderSource)
	}
	return cache.NewCachingOrderSource(rdb, cfg.CacheTTL, inner, "orders"), nil
}
