package converter

import (
	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/domain/listing"
	"foodshare/internal/usecase/queries"
)

func ListingViewToDomain(v *queries.ListingView) *listing.Listing {
	return listing.Reconstruct(
		v.ID,
		v.Donor,
		listing.Status(v.FoodStatus),
		v.ExpireDate,
		listing.Attributes(v.Attributes),
		v.CreatedAt,
		v.UpdatedAt,
	)
}

func ListingToView(l *listing.Listing) *queries.ListingView {
	return &queries.ListingView{
		ID:         l.ID(),
		Donor:      l.Donor(),
		FoodStatus: l.Status().String(),
		ExpireDate: l.ExpireDate(),
		Attributes: map[string]any(l.Attributes().Clone()),
		CreatedAt:  l.CreatedAt(),
		UpdatedAt:  l.UpdatedAt(),
	}
}

func RequestViewToDomain(v *queries.RequestView) *foodrequest.FoodRequest {
	return foodrequest.Reconstruct(
		v.ID,
		v.FoodID,
		v.Requester,
		v.Location,
		v.Reason,
		v.Contact,
		foodrequest.Status(v.Status),
		v.CreatedAt,
	)
}

func RequestToView(r *foodrequest.FoodRequest) *queries.RequestView {
	return &queries.RequestView{
		ID:        r.ID(),
		FoodID:    r.FoodID(),
		Requester: r.Requester(),
		Location:  r.Location(),
		Reason:    r.Reason(),
		Contact:   r.Contact(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
	}
}
