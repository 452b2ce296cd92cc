//go:build unit || e2e

package builder

import (
	"time"

	"foodshare/internal/domain/identity"
	"foodshare/internal/domain/listing"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	Donor      identity.Identity
	Attributes map[string]any
	ExpireDate *time.Time
	Status     listing.Status
	CreatedAt  time.Time
}

func NewListingBuilder() *ListingBuilder {
	expire := time.Date(2030, 1, 2, 18, 0, 0, 0, time.UTC)
	return &ListingBuilder{
		Donor: identity.Identity{
			Email:    "donor@example.com",
			Name:     "Dana Donor",
			PhotoURL: "https://img.example.com/dana.png",
			UID:      "uid-donor",
		},
		Attributes: map[string]any{
			"foodName":       "Vegetable Biryani",
			"foodImage":      "https://img.example.com/biryani.png",
			"foodQuantity":   4,
			"pickupLocation": "Road 5, Dhanmondi",
			"notes":          "Packed in boxes",
		},
		ExpireDate: &expire,
		Status:     listing.StatusAvailable,
		CreatedAt:  time.Date(2029, 12, 30, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithDonorEmail(email string) *ListingBuilder {
	b.Donor.Email = email
	return b
}

func (b *ListingBuilder) WithExpireDate(t *time.Time) *ListingBuilder {
	b.ExpireDate = t
	return b
}

// Build methods
func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	l, err := listing.NewListing(b.Donor, b.Attributes, b.ExpireDate, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if b.Status == listing.StatusDonated {
		l.MarkDonated()
	}
	return l, nil
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:         uuid.New(),
		Donor:      b.Donor,
		FoodStatus: b.Status.String(),
		ExpireDate: b.ExpireDate,
		Attributes: b.Attributes,
		CreatedAt:  b.CreatedAt,
	}
}

// BuildCreateBody is the JSON body a client posts to create this listing.
func (b *ListingBuilder) BuildCreateBody() map[string]any {
	body := make(map[string]any, len(b.Attributes)+1)
	for k, v := range b.Attributes {
		body[k] = v
	}
	if b.ExpireDate != nil {
		body["expireDate"] = b.ExpireDate.Format(time.RFC3339)
	}
	return body
}
