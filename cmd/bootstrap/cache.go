package bootstrap

import (
	"context"
	"log/slog"

	"foodshare/internal/infra/cache"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewListingCache,
		func(c *cache.ListingCache) shared.ListingCacheInvalidator { return c },
	),
)

// NewListingCache returns a disabled cache when REDIS_ADDR is unset.
func NewListingCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *cache.ListingCache {
	if !cfg.Cache.Enabled() {
		return cache.NewListingCache(nil, cfg.Cache.ListingTTL, logger)
	}

	rdb := cache.NewRedisClient(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Reads fall back to the store, so an unreachable redis is not fatal.
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis is not reachable", slog.String("addr", cfg.Cache.RedisAddr), slog.Any("error", err))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return cache.NewListingCache(rdb, cfg.Cache.ListingTTL, logger)
}
