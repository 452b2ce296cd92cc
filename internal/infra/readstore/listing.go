package readstore

import (
	"context"

	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	getListingByIDSQL = `SELECT ` + listingColumns + ` FROM foods f WHERE f.id = $1`

	listAvailableListingsSQL = `SELECT ` + listingColumns + ` FROM foods f
WHERE f.food_status = $1
ORDER BY f.expire_date ASC NULLS FIRST, f.created_at DESC`

	listAllListingsSQL = `SELECT ` + listingColumns + ` FROM foods f ORDER BY f.created_at DESC`

	listListingsByDonorSQL = `SELECT ` + listingColumns + ` FROM foods f
WHERE f.donor_email = $1
ORDER BY f.created_at DESC`
)

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(db db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: db}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	var row listingRow
	if err := r.db.QueryRow(ctx, getListingByIDSQL, id).Scan(row.dest()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	return row.toView(), nil
}

func (r *ListingReadStore) ListAvailable(ctx context.Context) ([]*queries.ListingView, error) {
	return r.list(ctx, "failed to list available listings", listAvailableListingsSQL, listing.StatusAvailable.String())
}

func (r *ListingReadStore) ListAll(ctx context.Context) ([]*queries.ListingView, error) {
	return r.list(ctx, "failed to list listings", listAllListingsSQL)
}

func (r *ListingReadStore) ListByDonorEmail(ctx context.Context, email string) ([]*queries.ListingView, error) {
	return r.list(ctx, "failed to list listings by donor", listListingsByDonorSQL, email)
}

func (r *ListingReadStore) list(ctx context.Context, failMsg, sql string, args ...any) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	views, err := collectListings(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return views, nil
}
