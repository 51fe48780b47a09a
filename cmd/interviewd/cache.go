package main

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/curriculum-interview/internal/cache"
	"github.com/SAP-F-2025/curriculum-interview/internal/config"
	"github.com/SAP-F-2025/curriculum-interview/pkg"
)

// openCache connects to redis when caching is enabled. It returns nil when
// CACHE_TTL is zero or redis is unreachable; the closer is always safe to call.
func openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.CacheService, func()) {
	if cfg.CacheTTL <= 0 {
		return nil, func() {}
	}

	client, err := pkg.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("Session cache disabled", "error", err)
		return nil, func() {}
	}
	return cache.NewRedisCache(client, logger), func() { _ = client.Close() }
}
