//go:build unit

package response

import (
	"encoding/json"
	"testing"
	"time"

	"foodshare/internal/domain/identity"
	"foodshare/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIdentity(t *testing.T) {
	got := FromIdentity(identity.Identity{Email: "a@example.com", Name: "A", PhotoURL: "p", UID: "u1"})

	want := IdentityResponse{Name: "A", Email: "a@example.com", PhotoURL: "p", UID: "u1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromIdentity mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIdentity_Zero(t *testing.T) {
	assert.Equal(t, IdentityResponse{}, FromIdentity(identity.Identity{}))
}

func TestFromListingView_Flattens(t *testing.T) {
	id := uuid.New()
	created := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	view := &queries.ListingView{
		ID:         id,
		Donor:      identity.Identity{Email: "d@example.com", Name: "D", PhotoURL: identity.DefaultPhotoURL, UID: "u"},
		FoodStatus: "Available",
		Attributes: map[string]any{"foodName": "Rice", "food_status": "spoofed"},
		CreatedAt:  created,
	}

	raw, err := json.Marshal(FromListingView(view))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, id.String(), body["_id"])
	assert.Equal(t, "Rice", body["foodName"])
	assert.Equal(t, "Available", body["food_status"])
	assert.Nil(t, body["expireDate"])
	assert.Contains(t, body, "expireDate")
	assert.NotContains(t, body, "updatedAt")
	donator, ok := body["donator"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "d@example.com", donator["email"])
	assert.Equal(t, identity.DefaultPhotoURL, donator["photoURL"])
}

func TestFromRequestView_OmitsMissingFood(t *testing.T) {
	view := &queries.RequestView{
		ID:        uuid.New(),
		FoodID:    uuid.New(),
		Requester: identity.Identity{Email: "r@example.com"},
		Status:    "pending",
	}

	raw, err := json.Marshal(FromRequestView(view))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotContains(t, body, "food")
	assert.Equal(t, view.FoodID.String(), body["foodId"])
	assert.Equal(t, "r@example.com", body["user"].(map[string]any)["email"])
}
