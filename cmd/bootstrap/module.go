package bootstrap

import (
	"foodshare/cmd/bootstrap/components"
	"foodshare/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		IdentityModule,
		CacheModule,
		EventsModule,
	}
	if cfg.Store.Driver == config.StoreDriverPostgres {
		opts = append(opts, DBModule)
	}
	opts = append(opts,
		components.PersistenceModule(cfg.Store.Driver),
		components.UseCaseModule,
		components.HandlerModule,
	)
	return fx.Options(opts...)
}
