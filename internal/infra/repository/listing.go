package repository

import (
	"context"
	"time"

	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createListingSQL = `INSERT INTO foods
	(id, donor_email, donor_name, donor_photo_url, donor_uid, food_status, expire_date, attributes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9)
RETURNING id`

	// Keys absent from the patch keep their stored value.
	updateListingSQL = `UPDATE foods
SET attributes  = attributes || $2::jsonb,
    expire_date = COALESCE($3::timestamptz, expire_date),
    updated_at  = $4
WHERE id = $1`

	setListingStatusSQL = `UPDATE foods SET food_status = $2 WHERE id = $1`

	deleteListingSQL = `DELETE FROM foods WHERE id = $1`
)

type ListingRepository struct {
	db db.DBTX
}

func NewListingRepository(db db.DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) (uuid.UUID, error) {
	donor := l.Donor()
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createListingSQL,
		l.ID(),
		donor.Email,
		donor.Name,
		donor.PhotoURL,
		donor.UID,
		l.Status().String(),
		pgconv.TimePtrToPgtype(l.ExpireDate()),
		map[string]any(l.Attributes()),
		pgconv.TimeToPgtype(l.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return id, nil
}

func (r *ListingRepository) Update(ctx context.Context, id uuid.UUID, p listing.Patch, now time.Time) (shared.UpdateResult, error) {
	attrs := p.Attributes
	if attrs == nil {
		attrs = listing.Attributes{}
	}
	tag, err := r.db.Exec(ctx, updateListingSQL,
		id,
		map[string]any(attrs),
		pgconv.TimePtrToPgtype(p.ExpireDate),
		pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return shared.UpdateResult{}, infra.WrapRepoErr("failed to update listing", err)
	}
	return shared.UpdateResult{MatchedCount: tag.RowsAffected(), ModifiedCount: tag.RowsAffected()}, nil
}

func (r *ListingRepository) SetStatus(ctx context.Context, id uuid.UUID, status listing.Status) error {
	tag, err := r.db.Exec(ctx, setListingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set listing status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteListingSQL, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete listing", err)
	}
	return tag.RowsAffected(), nil
}
