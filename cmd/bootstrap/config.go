package bootstrap

import (
	"foodshare/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a config the CLI has already loaded, so option selection can depend on it.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
