package uow

import (
	"context"
	"errors"
	"log/slog"

	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/domain/listing"
	"foodshare/internal/infra/converter"
	"foodshare/internal/infra/db"
	"foodshare/internal/infra/readstore"
	"foodshare/internal/infra/repository"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// Pool is satisfied by *pgxpool.Pool.
type Pool interface {
	db.DBTX
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool Pool
}

func NewPostgresUoW(pool Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

// Within runs fn in one ReadCommitted transaction. A failed attempt is
// rolled back and returned as is; nothing is retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		// ErrTxClosed after a successful commit
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// CommandReads reads outside any transaction.
func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

type pgTx struct {
	dbtx db.DBTX

	listingRepo  shared.ListingRepository
	requestRepo  shared.RequestRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository(t.dbtx)
	}
	return t.listingRepo
}

func (t *pgTx) Requests() shared.RequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewRequestRepository(t.dbtx)
	}
	return t.requestRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// built on first use
	listingStore *readstore.ListingReadStore
	requestStore *readstore.RequestReadStore
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	if r.listingStore == nil {
		r.listingStore = readstore.NewListingReadStore(r.dbtx)
	}

	view, err := r.listingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ListingViewToDomain(view), nil
}

func (r *commandReads) RequestByID(ctx context.Context, id uuid.UUID) (*foodrequest.FoodRequest, error) {
	if r.requestStore == nil {
		r.requestStore = readstore.NewRequestReadStore(r.dbtx)
	}

	view, err := r.requestStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.RequestViewToDomain(view), nil
}
