//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"

	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/infra/uow"
	"foodshare/internal/usecase/shared"
	"foodshare/tests/common/builder"
	"foodshare/tests/common/dbtest"
	dbmock "foodshare/tests/mock/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errWriteFailed = errors.New("write failed")

// fakeTx routes statements to a DBTX mock and records how it ended.
type fakeTx struct {
	pgx.Tx
	db         *dbmock.MockDBTX
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, args...)
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakePool struct {
	*dbmock.MockDBTX
	tx       *fakeTx
	beginErr error
	opts     pgx.TxOptions
	begins   int
}

func (p *fakePool) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	p.begins++
	p.opts = opts
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	return p.tx, nil
}

func newFakePool(t *testing.T) (*fakePool, *dbmock.MockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	txDB := dbmock.NewMockDBTX(ctrl)
	return &fakePool{MockDBTX: dbmock.NewMockDBTX(ctrl), tx: &fakeTx{db: txDB}}, txDB
}

func TestPostgresUoW_Within(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: commits once fn returns nil", func(t *testing.T) {
		pool, txDB := newFakePool(t)
		txDB.EXPECT().Exec(gomock.Any(), gomock.Any(), id, listing.StatusDonated.String()).Return(dbtest.Tag("UPDATE", 1), nil)

		err := uow.NewPostgresUoW(pool).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Listings().SetStatus(ctx, id, listing.StatusDonated)
		})

		require.NoError(t, err)
		assert.True(t, pool.tx.committed)
		assert.False(t, pool.tx.rolledBack)
		assert.Equal(t, pgx.ReadCommitted, pool.opts.IsoLevel)
	})

	t.Run("error: fn failure rolls back and is returned as is", func(t *testing.T) {
		pool, txDB := newFakePool(t)
		txDB.EXPECT().Exec(gomock.Any(), gomock.Any(), id, listing.StatusDonated.String()).Return(dbtest.Tag("UPDATE", 1), nil)

		err := uow.NewPostgresUoW(pool).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Listings().SetStatus(ctx, id, listing.StatusDonated); err != nil {
				return err
			}
			return errWriteFailed
		})

		assert.ErrorIs(t, err, errWriteFailed)
		assert.False(t, pool.tx.committed)
		assert.True(t, pool.tx.rolledBack)
		assert.Equal(t, 1, pool.begins, "a failed transaction is not retried")
	})

	t.Run("error: conflict from a repository is not retried", func(t *testing.T) {
		pool, txDB := newFakePool(t)
		txDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(dbtest.Tag("UPDATE", 0), nil)

		err := uow.NewPostgresUoW(pool).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Requests().MarkAccepted(ctx, id)
		})

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.True(t, pool.tx.rolledBack)
		assert.Equal(t, 1, pool.begins)
	})

	t.Run("error: begin failure skips fn", func(t *testing.T) {
		pool, _ := newFakePool(t)
		pool.beginErr = errors.New("too many connections")
		called := false

		err := uow.NewPostgresUoW(pool).Within(ctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, pool.beginErr)
		assert.False(t, called)
	})

	t.Run("error: commit failure is returned", func(t *testing.T) {
		pool, _ := newFakePool(t)
		pool.tx.commitErr = errors.New("connection reset")

		err := uow.NewPostgresUoW(pool).Within(ctx, func(context.Context, shared.Tx) error {
			return nil
		})

		assert.ErrorIs(t, err, pool.tx.commitErr)
		assert.True(t, pool.tx.rolledBack)
	})
}

func TestPostgresUoW_TxReadsSeeTheTransaction(t *testing.T) {
	ctx := context.Background()
	pool, txDB := newFakePool(t)
	view := builder.NewListingBuilder().BuildView()
	txDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), view.ID).Return(dbtest.Row{Values: dbtest.ListingValues(view)})

	var got *listing.Listing
	err := uow.NewPostgresUoW(pool).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Reads().ListingByID(ctx, view.ID)
		got = l
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID())
	assert.Equal(t, "donor@example.com", got.OwnerEmail())
}

func TestPostgresUoW_CommandReads(t *testing.T) {
	ctx := context.Background()

	t.Run("success: request converted to the domain", func(t *testing.T) {
		pool, _ := newFakePool(t)
		view := builder.NewRequestBuilder().BuildView()
		pool.MockDBTX.EXPECT().QueryRow(gomock.Any(), gomock.Any(), view.ID).Return(dbtest.Row{Values: dbtest.RequestValues(view)})

		got, err := uow.NewPostgresUoW(pool).CommandReads().RequestByID(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID())
		assert.True(t, got.IsPending())
		assert.Zero(t, pool.begins, "command reads run outside a transaction")
	})

	t.Run("error: missing listing is not found", func(t *testing.T) {
		pool, _ := newFakePool(t)
		id := uuid.New()
		pool.MockDBTX.EXPECT().QueryRow(gomock.Any(), gomock.Any(), id).Return(dbtest.Row{Err: pgx.ErrNoRows})

		got, err := uow.NewPostgresUoW(pool).CommandReads().ListingByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}
