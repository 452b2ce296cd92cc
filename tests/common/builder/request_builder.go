//go:build unit || e2e

package builder

import (
	"time"

	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/domain/identity"
	reqdto "foodshare/internal/handler/dto/request"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	FoodID    uuid.UUID
	Requester identity.Identity
	Location  string
	Reason    string
	Contact   string
	CreatedAt time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		FoodID: uuid.New(),
		Requester: identity.Identity{
			Email:    "requester@example.com",
			Name:     "Rafi Requester",
			PhotoURL: identity.DefaultPhotoURL,
			UID:      "uid-requester",
		},
		Location:  "Mirpur 10",
		Reason:    "Family of five",
		Contact:   "+8801700000000",
		CreatedAt: time.Date(2029, 12, 31, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) WithFoodID(id uuid.UUID) *RequestBuilder {
	b.FoodID = id
	return b
}

// Build methods
func (b *RequestBuilder) BuildDomain() (*foodrequest.FoodRequest, error) {
	return foodrequest.NewFoodRequest(b.FoodID, b.Requester, b.Location, b.Reason, b.Contact, b.CreatedAt)
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:        uuid.New(),
		FoodID:    b.FoodID,
		Requester: b.Requester,
		Location:  b.Location,
		Reason:    b.Reason,
		Contact:   b.Contact,
		Status:    foodrequest.StatusPending.String(),
		CreatedAt: b.CreatedAt,
	}
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateFoodRequestRequest {
	return reqdto.CreateFoodRequestRequest{
		FoodID:   b.FoodID.String(),
		Location: b.Location,
		Reason:   b.Reason,
		Contact:  b.Contact,
	}
}
