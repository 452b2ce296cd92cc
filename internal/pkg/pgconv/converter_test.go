//go:build unit

package pgconv

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimePtrRoundTrip(t *testing.T) {
	assert.Nil(t, TimePtrFromPgtype(TimePtrToPgtype(nil)))

	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	got := TimePtrFromPgtype(TimePtrToPgtype(&ts))
	if assert.NotNil(t, got) {
		assert.True(t, ts.Equal(*got))
	}
}

func TestUUIDPtrFromPgtype(t *testing.T) {
	assert.Nil(t, UUIDPtrFromPgtype(pgtype.UUID{}))

	id := uuid.New()
	got := UUIDPtrFromPgtype(UUIDToPgtype(id))
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
}

func TestStringFromPgtype(t *testing.T) {
	assert.Equal(t, "", StringFromPgtype(pgtype.Text{}))
	assert.Equal(t, "Dhaka", StringFromPgtype(StringToPgtype("Dhaka")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(fmt.Errorf("other")))
}
