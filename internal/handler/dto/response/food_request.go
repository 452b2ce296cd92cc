package response

import (
	"time"

	"foodshare/internal/usecase/queries"
)

type FoodRequestResponse struct {
	ID        string           `json:"_id"`
	FoodID    string           `json:"foodId"`
	Location  string           `json:"location"`
	Reason    string           `json:"reason"`
	Contact   string           `json:"contact"`
	Status    string           `json:"status"`
	User      IdentityResponse `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
	// Food is only present on joined reads whose listing still exists.
	Food ListingResponse `json:"food,omitempty"`
}

func FromRequestView(v *queries.RequestView) *FoodRequestResponse {
	return &FoodRequestResponse{
		ID:        v.ID.String(),
		FoodID:    v.FoodID.String(),
		Location:  v.Location,
		Reason:    v.Reason,
		Contact:   v.Contact,
		Status:    v.Status,
		User:      FromIdentity(v.Requester),
		CreatedAt: v.CreatedAt,
		Food:      FromListingView(v.Food),
	}
}

func FromRequestViews(views []*queries.RequestView) []*FoodRequestResponse {
	res := make([]*FoodRequestResponse, len(views))
	for i, v := range views {
		res[i] = FromRequestView(v)
	}
	return res
}
