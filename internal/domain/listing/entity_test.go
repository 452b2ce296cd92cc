//go:build unit

package listing_test

import (
	"testing"
	"time"

	"foodshare/internal/domain/identity"
	"foodshare/internal/domain/listing"
	"foodshare/internal/pkg/ptr"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	t.Run("starts available with donor snapshot", func(t *testing.T) {
		b := builder.NewListingBuilder()

		actual, err := b.BuildDomain()

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, listing.StatusAvailable, actual.Status())
		assert.True(t, actual.IsAvailable())
		assert.Equal(t, b.Donor, actual.Donor())
		assert.Equal(t, "donor@example.com", actual.OwnerEmail())
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
		assert.Nil(t, actual.UpdatedAt())
		assert.Equal(t, "Vegetable Biryani", actual.Attributes()["foodName"])
	})

	t.Run("server owned keys are dropped from attributes", func(t *testing.T) {
		b := builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.Attributes["_id"] = "forged"
			b.Attributes["donator"] = map[string]any{"email": "mallory@example.com"}
			b.Attributes["food_status"] = "donated"
			b.Attributes["createdAt"] = "1999-01-01"
		})

		actual, err := b.BuildDomain()

		require.NoError(t, err)
		for _, k := range []string{"_id", "donator", "food_status", "createdAt"} {
			assert.NotContains(t, actual.Attributes(), k)
		}
		assert.Equal(t, "donor@example.com", actual.Donor().Email)
		assert.Equal(t, listing.StatusAvailable, actual.Status())
	})

	t.Run("donor email required", func(t *testing.T) {
		_, err := builder.NewListingBuilder().WithDonorEmail("").BuildDomain()

		assert.ErrorIs(t, err, listing.ErrDonorRequired)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err1 := builder.NewListingBuilder().BuildDomain()
		b, err2 := builder.NewListingBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestListing_Apply(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("merges attributes and keeps expire date when absent", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		before := *l.ExpireDate()

		l.Apply(listing.NewPatch(map[string]any{"foodQuantity": 2, "donator": "x"}, nil), now)

		assert.Equal(t, 2, l.Attributes()["foodQuantity"])
		assert.Equal(t, "Vegetable Biryani", l.Attributes()["foodName"])
		assert.NotContains(t, l.Attributes(), "donator")
		assert.True(t, before.Equal(*l.ExpireDate()))
		require.NotNil(t, l.UpdatedAt())
		assert.Equal(t, now, *l.UpdatedAt())
		assert.Equal(t, listing.StatusAvailable, l.Status())
	})

	t.Run("replaces expire date when given", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		next := now.Add(72 * time.Hour)

		l.Apply(listing.NewPatch(nil, &next), now)

		assert.Equal(t, next, *l.ExpireDate())
	})
}

func TestListing_OwnedByAndClone(t *testing.T) {
	l, err := builder.NewListingBuilder().BuildDomain()
	require.NoError(t, err)

	assert.True(t, l.OwnedBy(identity.Identity{Email: "donor@example.com"}))
	assert.False(t, l.OwnedBy(identity.Identity{Email: "DONOR@example.com"}))

	c := l.Clone()
	c.Attributes()["foodName"] = "changed"
	c.MarkDonated()

	assert.Equal(t, "Vegetable Biryani", l.Attributes()["foodName"])
	assert.Equal(t, listing.StatusAvailable, l.Status())
	assert.Equal(t, listing.StatusDonated, c.Status())
}

func TestParseExpireDate(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected *time.Time
		errIs    error
	}{
		{name: "empty is null", raw: ""},
		{name: "whitespace is null", raw: "  "},
		{
			name:     "date only",
			raw:      "2025-06-01",
			expected: ptr.To(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "datetime-local input",
			raw:      "2025-06-01T14:30",
			expected: ptr.To(time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)),
		},
		{
			name:     "RFC3339 with offset",
			raw:      "2025-06-01T14:30:00+06:00",
			expected: ptr.To(time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)),
		},
		{
			name:     "ISO with millis",
			raw:      "2025-06-01T14:30:00.123Z",
			expected: ptr.To(time.Date(2025, 6, 1, 14, 30, 0, 123000000, time.UTC)),
		},
		{name: "garbage", raw: "next tuesday", errIs: listing.ErrInvalidExpireDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := listing.ParseExpireDate(tc.raw)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.expected.Equal(*got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestSanitizeAttributes(t *testing.T) {
	raw := map[string]any{"id": 1, "updatedAt": "x", "expireDate": "2025-01-01", "foodName": "Rice"}

	got := listing.SanitizeAttributes(raw)

	assert.Equal(t, listing.Attributes{"foodName": "Rice"}, got)
	assert.Len(t, raw, 4)
}

