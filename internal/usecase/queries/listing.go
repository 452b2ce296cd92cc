package queries

import (
	"context"

	"foodshare/internal/domain/identity"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/queries/listing_mock.go -package=queriesmock

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	// ListAvailable orders by expire date ascending with undated listings first.
	ListAvailable(ctx context.Context) ([]*ListingView, error)
	ListAll(ctx context.Context) ([]*ListingView, error)
	ListByDonorEmail(ctx context.Context, email string) ([]*ListingView, error)
}

type ListingQueries interface {
	ListAvailable(ctx context.Context) ([]*ListingView, error)
	ListAll(ctx context.Context) ([]*ListingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListMine(ctx context.Context, actor identity.Identity) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	repo ListingReadStore
}

func NewListingQueries(repo ListingReadStore) ListingQueries {
	return &listingQueriesImpl{repo: repo}
}

func (q *listingQueriesImpl) ListAvailable(ctx context.Context) ([]*ListingView, error) {
	return q.repo.ListAvailable(ctx)
}

func (q *listingQueriesImpl) ListAll(ctx context.Context) ([]*ListingView, error) {
	return q.repo.ListAll(ctx)
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	lv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, err
	}
	return lv, nil
}

func (q *listingQueriesImpl) ListMine(ctx context.Context, actor identity.Identity) ([]*ListingView, error) {
	if actor.IsZero() {
		return nil, errs.ErrForbidden
	}
	return q.repo.ListByDonorEmail(ctx, actor.Email)
}
