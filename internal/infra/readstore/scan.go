package readstore

import (
	"foodshare/internal/domain/identity"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listingColumns = `f.id, f.donor_email, f.donor_name, f.donor_photo_url, f.donor_uid,
	f.food_status, f.expire_date, f.attributes, f.created_at, f.updated_at`

const requestColumns = `r.id, r.food_id, r.requester_email, r.requester_name, r.requester_photo_url, r.requester_uid,
	r.location, r.reason, r.contact, r.status, r.created_at`

// listingRow tolerates NULLs so the same row serves LEFT JOIN reads.
type listingRow struct {
	ID            pgtype.UUID
	DonorEmail    pgtype.Text
	DonorName     pgtype.Text
	DonorPhotoURL pgtype.Text
	DonorUID      pgtype.Text
	FoodStatus    pgtype.Text
	ExpireDate    pgtype.Timestamptz
	Attributes    map[string]any
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (r *listingRow) dest() []any {
	return []any{
		&r.ID, &r.DonorEmail, &r.DonorName, &r.DonorPhotoURL, &r.DonorUID,
		&r.FoodStatus, &r.ExpireDate, &r.Attributes, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *listingRow) toView() *queries.ListingView {
	attrs := r.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &queries.ListingView{
		ID: pgconv.UUIDFromPgtype(r.ID),
		Donor: identity.Identity{
			Email:    pgconv.StringFromPgtype(r.DonorEmail),
			Name:     pgconv.StringFromPgtype(r.DonorName),
			PhotoURL: pgconv.StringFromPgtype(r.DonorPhotoURL),
			UID:      pgconv.StringFromPgtype(r.DonorUID),
		},
		FoodStatus: pgconv.StringFromPgtype(r.FoodStatus),
		ExpireDate: pgconv.TimePtrFromPgtype(r.ExpireDate),
		Attributes: attrs,
		CreatedAt:  pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:  pgconv.TimePtrFromPgtype(r.UpdatedAt),
	}
}

type requestRow struct {
	ID                pgtype.UUID
	FoodID            pgtype.UUID
	RequesterEmail    pgtype.Text
	RequesterName     pgtype.Text
	RequesterPhotoURL pgtype.Text
	RequesterUID      pgtype.Text
	Location          pgtype.Text
	Reason            pgtype.Text
	Contact           pgtype.Text
	Status            pgtype.Text
	CreatedAt         pgtype.Timestamptz
}

func (r *requestRow) dest() []any {
	return []any{
		&r.ID, &r.FoodID, &r.RequesterEmail, &r.RequesterName, &r.RequesterPhotoURL, &r.RequesterUID,
		&r.Location, &r.Reason, &r.Contact, &r.Status, &r.CreatedAt,
	}
}

func (r *requestRow) toView() *queries.RequestView {
	return &queries.RequestView{
		ID:     pgconv.UUIDFromPgtype(r.ID),
		FoodID: pgconv.UUIDFromPgtype(r.FoodID),
		Requester: identity.Identity{
			Email:    pgconv.StringFromPgtype(r.RequesterEmail),
			Name:     pgconv.StringFromPgtype(r.RequesterName),
			PhotoURL: pgconv.StringFromPgtype(r.RequesterPhotoURL),
			UID:      pgconv.StringFromPgtype(r.RequesterUID),
		},
		Location:  pgconv.StringFromPgtype(r.Location),
		Reason:    pgconv.StringFromPgtype(r.Reason),
		Contact:   pgconv.StringFromPgtype(r.Contact),
		Status:    pgconv.StringFromPgtype(r.Status),
		CreatedAt: pgconv.TimeFromPgtype(r.CreatedAt),
	}
}

func collectListings(rows pgx.Rows) ([]*queries.ListingView, error) {
	defer rows.Close()
	out := []*queries.ListingView{}
	for rows.Next() {
		var row listingRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		out = append(out, row.toView())
	}
	return out, rows.Err()
}

func collectRequests(rows pgx.Rows) ([]*queries.RequestView, error) {
	defer rows.Close()
	out := []*queries.RequestView{}
	for rows.Next() {
		var row requestRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		out = append(out, row.toView())
	}
	return out, rows.Err()
}

// collectRequestsWithListing scans request columns followed by listing columns.
func collectRequestsWithListing(rows pgx.Rows) ([]*queries.RequestView, error) {
	defer rows.Close()
	out := []*queries.RequestView{}
	for rows.Next() {
		var req requestRow
		var food listingRow
		if err := rows.Scan(append(req.dest(), food.dest()...)...); err != nil {
			return nil, err
		}
		view := req.toView()
		if food.ID.Valid {
			view.Food = food.toView()
		}
		out = append(out, view)
	}
	return out, rows.Err()
}
