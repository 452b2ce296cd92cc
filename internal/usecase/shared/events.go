package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventListingCreated  EventType = "listing.created"
	EventListingUpdated  EventType = "listing.updated"
	EventListingDeleted  EventType = "listing.deleted"
	EventRequestCreated  EventType = "request.created"
	EventRequestAccepted EventType = "request.accepted"
)

type Event struct {
	Type       EventType  `json:"type"`
	ListingID  uuid.UUID  `json:"listing_id"`
	RequestID  *uuid.UUID `json:"request_id,omitempty"`
	ActorEmail string     `json:"actor_email"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// EventPublisher is called after commit. Delivery is best effort and never fails the operation.
type EventPublisher interface {
	Publish(ctx context.Context, evt Event) error
}

// ListingCacheInvalidator drops cached listing reads after a write commits.
type ListingCacheInvalidator interface {
	Invalidate(ctx context.Context, id uuid.UUID)
}

type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, Event) error { return nil }

type NopCacheInvalidator struct{}

func (NopCacheInvalidator) Invalidate(context.Context, uuid.UUID) {}
