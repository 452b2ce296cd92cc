//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/infra/readstore"
	"foodshare/internal/usecase/queries"
	"foodshare/tests/common/builder"
	"foodshare/tests/common/dbtest"
	dbmock "foodshare/tests/mock/db"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// Listing Read Store Tests
// =============================================================================

func TestListingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewListingBuilder().BuildView()

	testCases := []struct {
		name       string
		row        dbtest.Row
		expect     *queries.ListingView
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:   "success: listing found",
			row:    dbtest.Row{Values: dbtest.ListingValues(view)},
			expect: view,
		},
		{
			name:       "error: listing not found",
			row:        dbtest.Row{Err: pgx.ErrNoRows},
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error",
			row:        dbtest.Row{Err: errDBConnectionLost},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)
			mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), view.ID).Return(tc.row)

			got, err := readstore.NewListingReadStore(mockDB).FindByID(ctx, view.ID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Errorf("FindByID mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListingReadStore_ListAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows are returned in query order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		first := builder.NewListingBuilder().WithExpireDate(nil).BuildView()
		second := builder.NewListingBuilder().BuildView()
		rows := dbtest.NewRows(dbtest.ListingValues(first), dbtest.ListingValues(second))
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), listing.StatusAvailable.String()).Return(rows, nil)

		got, err := readstore.NewListingReadStore(mockDB).ListAvailable(ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Nil(t, got[0].ExpireDate)
		assert.Equal(t, second.ID, got[1].ID)
		assert.True(t, rows.Closed())
	})

	t.Run("success: no rows is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbtest.NewRows(), nil)

		got, err := readstore.NewListingReadStore(mockDB).ListAvailable(ctx)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := readstore.NewListingReadStore(mockDB).ListAvailable(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: scan fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		rows := dbtest.NewRows(dbtest.ListingValues(builder.NewListingBuilder().BuildView()))
		rows.ScanErr = errDBConnectionLost
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)

		_, err := readstore.NewListingReadStore(mockDB).ListAvailable(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, rows.Closed())
	})
}

func TestListingReadStore_ListByDonorEmail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	view := builder.NewListingBuilder().BuildView()
	mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), "donor@example.com").
		Return(dbtest.NewRows(dbtest.ListingValues(view)), nil)

	got, err := readstore.NewListingReadStore(mockDB).ListByDonorEmail(ctx, "donor@example.com")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "donor@example.com", got[0].Donor.Email)
}

// =============================================================================
// Request Read Store Tests
// =============================================================================

func TestRequestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewRequestBuilder().BuildView()

	t.Run("success: request found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), view.ID).Return(dbtest.Row{Values: dbtest.RequestValues(view)})

		got, err := readstore.NewRequestReadStore(mockDB).FindByID(ctx, view.ID)

		require.NoError(t, err)
		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("FindByID mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), view.ID).Return(dbtest.Row{Err: pgx.ErrNoRows})

		got, err := readstore.NewRequestReadStore(mockDB).FindByID(ctx, view.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}

func TestRequestReadStore_ListByRequesterEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success: joined listing is attached, orphans keep a nil listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		food := builder.NewListingBuilder().BuildView()
		withFood := builder.NewRequestBuilder().WithFoodID(food.ID).BuildView()
		orphan := builder.NewRequestBuilder().WithFoodID(uuid.New()).BuildView()
		rows := dbtest.NewRows(
			append(dbtest.RequestValues(withFood), dbtest.ListingValues(food)...),
			append(dbtest.RequestValues(orphan), dbtest.ListingValues(nil)...),
		)
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), "requester@example.com").Return(rows, nil)

		got, err := readstore.NewRequestReadStore(mockDB).ListByRequesterEmail(ctx, "requester@example.com")

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].Food)
		assert.Equal(t, food.ID, got[0].Food.ID)
		assert.Equal(t, "Vegetable Biryani", got[0].Food.Attributes["foodName"])
		assert.Equal(t, orphan.ID, got[1].ID)
		assert.Equal(t, orphan.FoodID, got[1].FoodID)
		assert.Nil(t, got[1].Food)
	})

	t.Run("error: query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		got, err := readstore.NewRequestReadStore(mockDB).ListByRequesterEmail(ctx, "requester@example.com")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})

	t.Run("error: iteration fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := dbmock.NewMockDBTX(ctrl)
		rows := dbtest.NewRows()
		rows.IterErr = errDBConnectionLost
		mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)

		_, err := readstore.NewRequestReadStore(mockDB).ListByRequesterEmail(ctx, "requester@example.com")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRequestReadStore_ListByFoodID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	foodID := uuid.New()
	first := builder.NewRequestBuilder().WithFoodID(foodID).BuildView()
	second := builder.NewRequestBuilder().WithFoodID(foodID).BuildView()
	mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), foodID).
		Return(dbtest.NewRows(dbtest.RequestValues(first), dbtest.RequestValues(second)), nil)

	got, err := readstore.NewRequestReadStore(mockDB).ListByFoodID(ctx, foodID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Nil(t, got[0].Food)
}
