package commands

import (
	"context"
	"log/slog"

	"foodshare/internal/domain/identity"
	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/commands/listing_mock.go -package=commandsmock

type CreateListingInput struct {
	Attributes map[string]any
	// ExpireDate is the raw client value. Empty means no expiry.
	ExpireDate string
}

type UpdateListingInput struct {
	Attributes map[string]any
	// ExpireDate is the raw client value. Empty keeps the stored date.
	ExpireDate string
}

type CreateListingResult struct {
	ListingID uuid.UUID
}

type UpdateListingResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

type DeleteListingResult struct {
	DeletedCount int64
}

type ListingCommands interface {
	Create(ctx context.Context, actor identity.Identity, in CreateListingInput) (*CreateListingResult, error)
	Update(ctx context.Context, actor identity.Identity, id uuid.UUID, in UpdateListingInput) (*UpdateListingResult, error)
	Delete(ctx context.Context, actor identity.Identity, id uuid.UUID) (*DeleteListingResult, error)
}

type listingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	events shared.EventPublisher
	cache  shared.ListingCacheInvalidator
	logger *slog.Logger
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock, events shared.EventPublisher, cache shared.ListingCacheInvalidator, logger *slog.Logger) ListingCommands {
	return &listingCommandsImpl{uow: uow, clock: clk, events: events, cache: cache, logger: logger}
}

func (uc *listingCommandsImpl) Create(ctx context.Context, actor identity.Identity, in CreateListingInput) (*CreateListingResult, error) {
	expireDate, err := listing.ParseExpireDate(in.ExpireDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	l, err := listing.NewListing(actor, in.Attributes, expireDate, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Listings().Create(ctx, l)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "listing created",
		slog.String("listing_id", createdID.String()),
		slog.String("donor_email", actor.Email))
	uc.publish(ctx, shared.EventListingCreated, createdID, actor)
	return &CreateListingResult{ListingID: createdID}, nil
}

func (uc *listingCommandsImpl) Update(ctx context.Context, actor identity.Identity, id uuid.UUID, in UpdateListingInput) (*UpdateListingResult, error) {
	expireDate, err := listing.ParseExpireDate(in.ExpireDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	p := listing.NewPatch(in.Attributes, expireDate)

	var res shared.UpdateResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := loadListing(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		if derr = shared.RequireOwner(l, actor); derr != nil {
			return derr
		}

		res, derr = tx.Listings().Update(ctx, id, p, uc.clock.Now())
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "listing updated", slog.String("listing_id", id.String()))
	uc.cache.Invalidate(ctx, id)
	uc.publish(ctx, shared.EventListingUpdated, id, actor)
	return &UpdateListingResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete leaves requests that reference the listing in place.
func (uc *listingCommandsImpl) Delete(ctx context.Context, actor identity.Identity, id uuid.UUID) (*DeleteListingResult, error) {
	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := loadListing(ctx, tx.Reads(), id)
		if derr != nil {
			return derr
		}
		if derr = shared.RequireOwner(l, actor); derr != nil {
			return derr
		}

		deleted, derr = tx.Listings().Delete(ctx, id)
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "listing deleted", slog.String("listing_id", id.String()))
	uc.cache.Invalidate(ctx, id)
	uc.publish(ctx, shared.EventListingDeleted, id, actor)
	return &DeleteListingResult{DeletedCount: deleted}, nil
}

func (uc *listingCommandsImpl) publish(ctx context.Context, kind shared.EventType, listingID uuid.UUID, actor identity.Identity) {
	publishEvent(ctx, uc.events, uc.logger, shared.Event{
		Type:       kind,
		ListingID:  listingID,
		ActorEmail: actor.Email,
		OccurredAt: uc.clock.Now(),
	})
}

func loadListing(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*listing.Listing, error) {
	l, err := reads.ListingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

func publishEvent(ctx context.Context, events shared.EventPublisher, logger *slog.Logger, evt shared.Event) {
	if err := events.Publish(ctx, evt); err != nil {
		logger.WarnContext(ctx, "failed to publish lifecycle event",
			slog.String("type", string(evt.Type)),
			slog.String("listing_id", evt.ListingID.String()),
			slog.Any("error", err))
	}
}
