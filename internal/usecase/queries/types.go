package queries

import (
	"time"

	"foodshare/internal/domain/identity"

	"github.com/google/uuid"
)

// ListingView is the read model of a stored listing.
type ListingView struct {
	ID         uuid.UUID         `json:"id"`
	Donor      identity.Identity `json:"donor"`
	FoodStatus string            `json:"food_status"`
	ExpireDate *time.Time        `json:"expire_date,omitempty"`
	Attributes map[string]any    `json:"attributes"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  *time.Time        `json:"updated_at,omitempty"`
}

func (v *ListingView) OwnerEmail() string {
	return v.Donor.Email
}

// RequestView is a stored request. Food is set only by joined reads and
// stays nil when the listing no longer exists.
type RequestView struct {
	ID        uuid.UUID         `json:"id"`
	FoodID    uuid.UUID         `json:"food_id"`
	Requester identity.Identity `json:"requester"`
	Location  string            `json:"location"`
	Reason    string            `json:"reason"`
	Contact   string            `json:"contact"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Food      *ListingView      `json:"food,omitempty"`
}
