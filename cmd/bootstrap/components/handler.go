package components

import (
	"context"
	"log/slog"

	"foodshare/internal/handler"
	"foodshare/internal/handler/api"
	"foodshare/internal/handler/middleware"
	"foodshare/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewRequestHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
		NewRateLimiter,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(listings *api.ListingHandler, requests *api.RequestHandler) handler.Handlers {
	return handler.Handlers{Listings: listings, Requests: requests}
}

func NewMiddlewares(auth *middleware.AuthMiddleware, logger *middleware.Logger, metrics *middleware.Metrics, rl *middleware.RateLimiter) handler.Middlewares {
	return handler.Middlewares{Auth: auth, Logger: logger, Metrics: metrics, RateLimiter: rl}
}

// NewRateLimiter returns nil when rate limiting is disabled.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*middleware.RateLimiter, error) {
	if !cfg.RateLimit.Enabled {
		return nil, nil
	}

	rl, err := middleware.NewRateLimiter(cfg.RateLimit, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rl.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			rl.Stop()
			return nil
		},
	})
	return rl, nil
}
