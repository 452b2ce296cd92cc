//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// Querier is the part of pgxpool.Pool the fixtures need.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ListingStatus reads food_status straight from the table.
func ListingStatus(t *testing.T, db Querier, id uuid.UUID) string {
	t.Helper()
	return scanString(t, db, "SELECT food_status FROM foods WHERE id = $1", id)
}

// RequestStatus reads status straight from the table.
func RequestStatus(t *testing.T, db Querier, id uuid.UUID) string {
	t.Helper()
	return scanString(t, db, "SELECT status FROM food_requests WHERE id = $1", id)
}

func CountRows(t *testing.T, db Querier, table string) int {
	t.Helper()

	var n int
	q := "SELECT count(*) FROM " + pgx.Identifier{table}.Sanitize()
	require.NoError(t, db.QueryRow(context.Background(), q).Scan(&n))
	return n
}

func scanString(t *testing.T, db Querier, q string, id uuid.UUID) string {
	t.Helper()

	var v string
	require.NoError(t, db.QueryRow(context.Background(), q, id).Scan(&v))
	return v
}

var (
	truncateOnce sync.Once
	truncateStmt string
	truncateErr  error
)

// ResetDB empties every application table. schema_migrations is left alone
// so the migrated version survives between subtests.
func ResetDB(db Querier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		truncateStmt, truncateErr = buildTruncate(ctx, db)
	})
	if truncateErr != nil {
		return truncateErr
	}
	if truncateStmt == "" {
		return nil
	}
	_, err := db.Exec(ctx, truncateStmt)
	return errs.Wrap(err, "truncate tables")
}

func buildTruncate(ctx context.Context, db Querier) (string, error) {
	rows, err := db.Query(ctx, `
		SELECT quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'schema_migrations'`)
	if err != nil {
		return "", errs.Wrap(err, "list tables")
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", errs.Wrap(err, "scan table names")
	}
	if len(tables) == 0 {
		return "", nil
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE", nil
}
