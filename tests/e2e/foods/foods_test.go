//go:build e2e

package foods_test

import (
	"net/http"
	"testing"

	"foodshare/internal/handler/dto/response"
	"foodshare/tests/common/authtest"
	"foodshare/tests/common/builder"
	"foodshare/tests/common/dbtest"
	"foodshare/tests/common/httptest"
	"foodshare/tests/common/testutil"
	"foodshare/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	donorEmail     = "donor@example.com"
	otherDonor     = "donor2@example.com"
	requesterEmail = "requester@example.com"
)

type FoodsSuite struct {
	e2e.SharedSuite
	tokens *authtest.TokenHelper
}

func (s *FoodsSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewTokenHelper(s.Config.Identity)
}

func (s *FoodsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestFoodsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FoodsSuite))
}

func (s *FoodsSuite) createListing(email string, body map[string]any) string {
	t := s.T()
	w := httptest.Call(t, s.Router, http.MethodPost, "/foods", body, s.tokens.Token(t, email))
	ack, location := httptest.ExpectCreated[response.InsertAck](t, w, "/foods/")
	require.True(t, ack.Acknowledged)
	require.Equal(t, ack.InsertedID, location)
	return ack.InsertedID
}

func (s *FoodsSuite) createRequest(email, foodID string) string {
	t := s.T()
	dto := builder.NewRequestBuilder().BuildCreateRequestDTO()
	dto.FoodID = foodID
	w := httptest.Call(t, s.Router, http.MethodPost, "/food-requests", dto, s.tokens.Token(t, email))
	ack, location := httptest.ExpectCreated[response.RequestInsertAck](t, w, "/food-requests/")
	require.True(t, ack.Success)
	require.Equal(t, ack.InsertedID, location)
	return ack.InsertedID
}

func (s *FoodsSuite) getListing(id string) map[string]any {
	t := s.T()
	w := httptest.Call(t, s.Router, http.MethodGet, "/foods/"+id, nil, "")
	return httptest.ExpectJSON[map[string]any](t, w, http.StatusOK)
}

// =============================================================================
// Listings
// =============================================================================

func (s *FoodsSuite) TestListingLifecycle() {
	s.Run("create is public to read and server owned fields win", func() {
		t := s.T()
		body := builder.NewListingBuilder().BuildCreateBody()
		body["food_status"] = "donated"
		body["donator"] = map[string]any{"email": "mallory@example.com"}

		id := s.createListing(donorEmail, body)

		got := s.getListing(id)
		require.Equal(t, "Available", got["food_status"])
		require.Equal(t, "Vegetable Biryani", got["foodName"])
		donator, ok := got["donator"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, donorEmail, donator["email"])
		require.Equal(t, "Available", dbtest.ListingStatus(t, s.DB, uuid.MustParse(id)))
	})

	s.Run("anonymous create is rejected", func() {
		t := s.T()
		w := httptest.Call(t, s.Router, http.MethodPost, "/foods",
			builder.NewListingBuilder().BuildCreateBody(), "")

		httptest.ExpectError(t, w, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("expired token is rejected", func() {
		t := s.T()
		w := httptest.Call(t, s.Router, http.MethodPost, "/foods",
			builder.NewListingBuilder().BuildCreateBody(), s.tokens.ExpiredToken(t, donorEmail))

		httptest.ExpectError(t, w, http.StatusUnauthorized, "Invalid Token")
	})

	s.Run("only the donor may edit or delete", func() {
		t := s.T()
		id := s.createListing(donorEmail, builder.NewListingBuilder().BuildCreateBody())

		w := httptest.Call(t, s.Router, http.MethodPut, "/foods/"+id,
			map[string]any{"foodName": "Stolen"}, s.tokens.Token(t, otherDonor))
		httptest.ExpectError(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.Call(t, s.Router, http.MethodDelete, "/foods/"+id, nil, s.tokens.Token(t, otherDonor))
		httptest.ExpectError(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.Call(t, s.Router, http.MethodPut, "/foods/"+id,
			map[string]any{"foodQuantity": 2}, s.tokens.Token(t, donorEmail))
		updated := httptest.ExpectJSON[response.UpdateAck](t, w, http.StatusOK)
		require.Equal(t, int64(1), updated.MatchedCount)

		got := s.getListing(id)
		require.Equal(t, "Vegetable Biryani", got["foodName"])
		require.Equal(t, float64(2), got["foodQuantity"])
		require.NotNil(t, got["updatedAt"])

		w = httptest.Call(t, s.Router, http.MethodDelete, "/foods/"+id, nil, s.tokens.Token(t, donorEmail))
		deleted := httptest.ExpectJSON[response.DeleteAck](t, w, http.StatusOK)
		require.Equal(t, int64(1), deleted.DeletedCount)

		w = httptest.Call(t, s.Router, http.MethodGet, "/foods/"+id, nil, "")
		httptest.ExpectError(t, w, http.StatusNotFound, "Food not found")
	})

	s.Run("my foods is scoped to the caller", func() {
		t := s.T()
		mine := s.createListing(donorEmail, builder.NewListingBuilder().BuildCreateBody())
		s.createListing(otherDonor, builder.NewListingBuilder().BuildCreateBody())

		w := httptest.Call(t, s.Router, http.MethodGet, "/my-foods", nil, s.tokens.Token(t, donorEmail))
		got := httptest.ExpectJSON[[]map[string]any](t, w, http.StatusOK)

		ids := make([]string, len(got))
		for i, l := range got {
			ids[i] = l["_id"].(string)
		}
		if diff := cmp.Diff([]string{mine}, ids); diff != "" {
			t.Errorf("my-foods mismatch (-want +got):\n%s", diff)
		}
	})
}

// =============================================================================
// Requests
// =============================================================================

func (s *FoodsSuite) TestRequestAcceptance() {
	s.Run("donor accepts once and the listing leaves the available feed", func() {
		t := s.T()
		foodID := s.createListing(donorEmail, builder.NewListingBuilder().BuildCreateBody())
		requestID := s.createRequest(requesterEmail, foodID)

		w := httptest.Call(t, s.Router, http.MethodGet, "/food-requests/"+foodID, nil, s.tokens.Token(t, otherDonor))
		httptest.ExpectError(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.Call(t, s.Router, http.MethodGet, "/food-requests/"+foodID, nil, s.tokens.Token(t, donorEmail))
		forListing := httptest.ExpectJSON[[]response.FoodRequestResponse](t, w, http.StatusOK)
		require.Len(t, forListing, 1)
		require.Equal(t, requestID, forListing[0].ID)
		require.Equal(t, "pending", forListing[0].Status)

		acceptURL := "/food-requests/" + requestID + "/accept"
		w = httptest.Call(t, s.Router, http.MethodPut, acceptURL, nil, s.tokens.Token(t, otherDonor))
		httptest.ExpectError(t, w, http.StatusForbidden, "Forbidden")
		require.Equal(t, "pending", dbtest.RequestStatus(t, s.DB, uuid.MustParse(requestID)))

		w = httptest.Call(t, s.Router, http.MethodPut, acceptURL, nil, s.tokens.Token(t, donorEmail))
		ok := httptest.ExpectJSON[response.SuccessAck](t, w, http.StatusOK)
		require.True(t, ok.Success)
		require.Equal(t, "accepted", dbtest.RequestStatus(t, s.DB, uuid.MustParse(requestID)))
		require.Equal(t, "donated", dbtest.ListingStatus(t, s.DB, uuid.MustParse(foodID)))

		w = httptest.Call(t, s.Router, http.MethodGet, "/available-foods", nil, "")
		available := httptest.ExpectJSON[[]map[string]any](t, w, http.StatusOK)
		require.Empty(t, available)

		w = httptest.Call(t, s.Router, http.MethodPut, acceptURL, nil, s.tokens.Token(t, donorEmail))
		httptest.ExpectError(t, w, http.StatusConflict, "Request already accepted")
	})

	s.Run("missing fields are rejected and nothing is stored", func() {
		t := s.T()
		dto := builder.NewRequestBuilder().BuildCreateRequestDTO()

		for _, field := range []string{"foodId", "location", "reason", "contact"} {
			body := testutil.JSONMap(t, dto, testutil.Without(field))
			w := httptest.Call(t, s.Router, http.MethodPost, "/food-requests", body, s.tokens.Token(t, requesterEmail))
			httptest.ExpectError(t, w, http.StatusBadRequest, "Missing required fields")
		}
		require.Zero(t, dbtest.CountRows(t, s.DB, "food_requests"))
	})

	s.Run("my requests keep orphans after the listing is deleted", func() {
		t := s.T()
		foodID := s.createListing(donorEmail, builder.NewListingBuilder().BuildCreateBody())
		requestID := s.createRequest(requesterEmail, foodID)

		w := httptest.Call(t, s.Router, http.MethodDelete, "/foods/"+foodID, nil, s.tokens.Token(t, donorEmail))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.Call(t, s.Router, http.MethodGet, "/my-food-requests", nil, s.tokens.Token(t, requesterEmail))
		mine := httptest.ExpectJSON[[]response.FoodRequestResponse](t, w, http.StatusOK)
		require.Len(t, mine, 1)
		require.Equal(t, requestID, mine[0].ID)
		require.Equal(t, foodID, mine[0].FoodID)
		require.Nil(t, mine[0].Food)

		w = httptest.Call(t, s.Router, http.MethodPut, "/food-requests/"+requestID+"/accept", nil, s.tokens.Token(t, donorEmail))
		httptest.ExpectError(t, w, http.StatusNotFound, "Food not found")
	})
}
