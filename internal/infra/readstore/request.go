package readstore

import (
	"context"

	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	getRequestByIDSQL = `SELECT ` + requestColumns + ` FROM food_requests r WHERE r.id = $1`

	listRequestsByRequesterSQL = `SELECT ` + requestColumns + `, ` + listingColumns + `
FROM food_requests r
LEFT JOIN foods f ON f.id = r.food_id
WHERE r.requester_email = $1
ORDER BY r.created_at DESC`

	listRequestsByFoodSQL = `SELECT ` + requestColumns + ` FROM food_requests r
WHERE r.food_id = $1
ORDER BY r.created_at DESC`
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var row requestRow
	if err := r.db.QueryRow(ctx, getRequestByIDSQL, id).Scan(row.dest()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get request by id", err)
	}
	return row.toView(), nil
}

func (r *RequestReadStore) ListByRequesterEmail(ctx context.Context, email string) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, listRequestsByRequesterSQL, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by requester", err)
	}
	views, err := collectRequestsWithListing(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan requests by requester", err)
	}
	return views, nil
}

func (r *RequestReadStore) ListByFoodID(ctx context.Context, foodID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, listRequestsByFoodSQL, foodID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by listing", err)
	}
	views, err := collectRequests(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan requests by listing", err)
	}
	return views, nil
}
