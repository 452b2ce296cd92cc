package queries

import (
	"context"

	"foodshare/internal/domain/identity"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=request.go -destination=../../../tests/mock/queries/request_mock.go -package=queriesmock

type RequestReadStore interface {
	// ListByRequesterEmail joins each request with its listing, newest first.
	ListByRequesterEmail(ctx context.Context, email string) ([]*RequestView, error)
	ListByFoodID(ctx context.Context, foodID uuid.UUID) ([]*RequestView, error)
}

// ListingOwnerStore reads the listing behind an ownership check. It must hit
// the store directly, never the listing cache.
type ListingOwnerStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type RequestQueries interface {
	ListMine(ctx context.Context, actor identity.Identity) ([]*RequestView, error)
	ListForListing(ctx context.Context, actor identity.Identity, foodID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	listings ListingOwnerStore
}

func NewRequestQueries(requests RequestReadStore, listings ListingOwnerStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, listings: listings}
}

func (q *requestQueriesImpl) ListMine(ctx context.Context, actor identity.Identity) ([]*RequestView, error) {
	if actor.IsZero() {
		return nil, errs.ErrForbidden
	}
	return q.requests.ListByRequesterEmail(ctx, actor.Email)
}

func (q *requestQueriesImpl) ListForListing(ctx context.Context, actor identity.Identity, foodID uuid.UUID) ([]*RequestView, error) {
	lv, err := q.listings.FindByID(ctx, foodID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, err
	}
	if err := shared.RequireOwner(lv, actor); err != nil {
		return nil, err
	}
	return q.requests.ListByFoodID(ctx, foodID)
}
