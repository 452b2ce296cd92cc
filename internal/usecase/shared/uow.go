package shared

import (
	"context"
	"time"

	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/domain/listing"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. A returned error rolls everything back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Requests() RequestRepository
	Reads() CommandReads
}

// CommandReads load aggregates for write-side checks.
// Missing rows are reported as infra.KindNotFound.
type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*foodrequest.FoodRequest, error)
}

type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p listing.Patch, now time.Time) (UpdateResult, error)
	SetStatus(ctx context.Context, id uuid.UUID, status listing.Status) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *foodrequest.FoodRequest) (uuid.UUID, error)
	// MarkAccepted only moves a pending request. Anything else is infra.KindConflict.
	MarkAccepted(ctx context.Context, id uuid.UUID) error
}
