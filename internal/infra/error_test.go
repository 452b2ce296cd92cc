//go:build unit

package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, expected: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: KindDuplicateKey},
		{name: "fk violation", err: &pgconn.PgError{Code: "23503"}, expected: KindForeignKeyViolated},
		{name: "serialization failure", err: fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40001"}), expected: KindConflict},
		{name: "anything else", err: errors.New("connection reset"), expected: KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("boom")

	err := WrapRepoErr("listing not found", cause, KindNotFound)

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindDBFailure))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "NOT_FOUND: listing not found")
	assert.True(t, IsKind(fmt.Errorf("outer: %w", err), KindNotFound))
}

func TestWrapRepoErr_ClassifiesWithoutKind(t *testing.T) {
	assert.True(t, IsKind(WrapRepoErr("listing lookup", pgx.ErrNoRows), KindNotFound))
	assert.True(t, IsKind(WrapRepoErr("insert listing", &pgconn.PgError{Code: "23505"}), KindDuplicateKey))
	assert.True(t, IsKind(WrapRepoErr("request already handled", nil, KindConflict), KindConflict))
}
