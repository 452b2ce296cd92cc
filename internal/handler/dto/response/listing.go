package response

import (
	"log/slog"

	"foodshare/internal/domain/identity"
	"foodshare/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type IdentityResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	UID      string `json:"uid"`
}

func FromIdentity(id identity.Identity) IdentityResponse {
	var res IdentityResponse
	if err := copier.Copy(&res, &id); err != nil {
		slog.Error("failed to copy identity into response", slog.String("uid", id.UID), slog.Any("error", err))
	}
	return res
}

// ListingResponse is the flattened listing document: descriptive fields sit
// next to the fixed ones, which always win on a name clash.
type ListingResponse map[string]any

func FromListingView(v *queries.ListingView) ListingResponse {
	if v == nil {
		return nil
	}
	res := make(ListingResponse, len(v.Attributes)+6)
	for k, val := range v.Attributes {
		res[k] = val
	}
	res["_id"] = v.ID.String()
	res["donator"] = FromIdentity(v.Donor)
	res["food_status"] = v.FoodStatus
	res["expireDate"] = v.ExpireDate
	res["createdAt"] = v.CreatedAt
	if v.UpdatedAt != nil {
		res["updatedAt"] = v.UpdatedAt
	}
	return res
}

func FromListingViews(views []*queries.ListingView) []ListingResponse {
	res := make([]ListingResponse, len(views))
	for i, v := range views {
		res[i] = FromListingView(v)
	}
	return res
}
