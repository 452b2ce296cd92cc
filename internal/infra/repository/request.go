package repository

import (
	"context"

	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createRequestSQL = `INSERT INTO food_requests
	(id, food_id, requester_email, requester_name, requester_photo_url, requester_uid, location, reason, contact, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

	// The status guard makes concurrent accepts resolve to one winner.
	acceptRequestSQL = `UPDATE food_requests SET status = $2 WHERE id = $1 AND status = $3`
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(db db.DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *foodrequest.FoodRequest) (uuid.UUID, error) {
	requester := req.Requester()
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createRequestSQL,
		req.ID(),
		req.FoodID(),
		requester.Email,
		requester.Name,
		requester.PhotoURL,
		requester.UID,
		req.Location(),
		req.Reason(),
		req.Contact(),
		req.Status().String(),
		pgconv.TimeToPgtype(req.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create request", err)
	}
	return id, nil
}

func (r *RequestRepository) MarkAccepted(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, acceptRequestSQL, id, foodrequest.StatusAccepted.String(), foodrequest.StatusPending.String())
	if err != nil {
		return infra.WrapRepoErr("failed to accept request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request is no longer pending", nil, infra.KindConflict)
	}
	return nil
}
