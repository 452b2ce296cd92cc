package components

import (
	"foodshare/internal/infra/cache"
	"foodshare/internal/infra/db"
	"foodshare/internal/infra/memstore"
	"foodshare/internal/infra/readstore"
	"foodshare/internal/infra/uow"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/queries"
	"foodshare/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule binds the unit of work and read stores for the configured driver.
func PersistenceModule(driver string) fx.Option {
	if driver == config.StoreDriverMemory {
		return memoryModule
	}
	return postgresModule
}

var postgresModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewDBTX,
		NewTxPool,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		NewPostgresListingReadStore,
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingOwnerStore)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

var memoryModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		NewMemoryListingReadStore,
		fx.Annotate(
			memstore.NewListingReadStore,
			fx.As(new(queries.ListingOwnerStore)),
		),
		fx.Annotate(
			memstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxPool(pool *pgxpool.Pool) uow.Pool {
	return pool
}

// NewPostgresListingReadStore is the cached store behind the public listing
// reads. Ownership checks get the bare store as queries.ListingOwnerStore.
func NewPostgresListingReadStore(dbtx db.DBTX, c *cache.ListingCache) queries.ListingReadStore {
	return c.Wrap(readstore.NewListingReadStore(dbtx))
}

func NewMemoryListingReadStore(s *memstore.Store, c *cache.ListingCache) queries.ListingReadStore {
	return c.Wrap(memstore.NewListingReadStore(s))
}
