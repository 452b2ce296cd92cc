package foodrequest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodshare/internal/domain/identity"

	"github.com/google/uuid"
)

var (
	ErrMissingField    = errors.New("missing required fields")
	ErrAlreadyAccepted = errors.New("request already accepted")
	ErrRequesterEmpty  = errors.New("request requires a requester email")
)

type FoodRequest struct {
	id        uuid.UUID
	foodID    uuid.UUID
	requester identity.Identity
	location  string
	reason    string
	contact   string
	status    Status
	createdAt time.Time
}

// NewFoodRequest rejects empty required fields; whitespace counts as a value.
// The referenced listing is not checked.
func NewFoodRequest(foodID uuid.UUID, requester identity.Identity, location, reason, contact string, now time.Time) (*FoodRequest, error) {
	if requester.IsZero() {
		return nil, ErrRequesterEmpty
	}

	var missing []string
	if foodID == uuid.Nil {
		missing = append(missing, "foodId")
	}
	for _, f := range []struct{ name, value string }{
		{"location", location},
		{"reason", reason},
		{"contact", contact},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	return &FoodRequest{
		id:        uuid.New(),
		foodID:    foodID,
		requester: requester,
		location:  location,
		reason:    reason,
		contact:   contact,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func Reconstruct(id, foodID uuid.UUID, requester identity.Identity, location, reason, contact string, status Status, createdAt time.Time) *FoodRequest {
	return &FoodRequest{
		id:        id,
		foodID:    foodID,
		requester: requester,
		location:  location,
		reason:    reason,
		contact:   contact,
		status:    status,
		createdAt: createdAt,
	}
}

func (r *FoodRequest) ID() uuid.UUID                { return r.id }
func (r *FoodRequest) FoodID() uuid.UUID            { return r.foodID }
func (r *FoodRequest) Requester() identity.Identity { return r.requester }
func (r *FoodRequest) Location() string             { return r.location }
func (r *FoodRequest) Reason() string               { return r.reason }
func (r *FoodRequest) Contact() string              { return r.contact }
func (r *FoodRequest) Status() Status               { return r.status }
func (r *FoodRequest) CreatedAt() time.Time         { return r.createdAt }
func (r *FoodRequest) OwnerEmail() string           { return r.requester.Email }
func (r *FoodRequest) IsPending() bool              { return r.status == StatusPending }

// Accept is the single pending -> accepted transition.
func (r *FoodRequest) Accept() error {
	if r.status != StatusPending {
		return ErrAlreadyAccepted
	}
	r.status = StatusAccepted
	return nil
}

func (r *FoodRequest) Clone() *FoodRequest {
	c := *r
	return &c
}
