package commands

import (
	"context"
	"log/slog"
	"strings"

	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/domain/identity"
	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=request.go -destination=../../../tests/mock/commands/request_mock.go -package=commandsmock

var ErrInvalidFoodID = errs.New("foodId is not a valid id")

type CreateRequestInput struct {
	FoodID   string
	Location string
	Reason   string
	Contact  string
}

type CreateRequestResult struct {
	RequestID uuid.UUID
}

type RequestCommands interface {
	Create(ctx context.Context, actor identity.Identity, in CreateRequestInput) (*CreateRequestResult, error)
	Accept(ctx context.Context, actor identity.Identity, requestID uuid.UUID) error
}

type requestCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	events shared.EventPublisher
	cache  shared.ListingCacheInvalidator
	logger *slog.Logger
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock, events shared.EventPublisher, cache shared.ListingCacheInvalidator, logger *slog.Logger) RequestCommands {
	return &requestCommandsImpl{uow: uow, clock: clk, events: events, cache: cache, logger: logger}
}

// Create does not check that the listing exists.
func (uc *requestCommandsImpl) Create(ctx context.Context, actor identity.Identity, in CreateRequestInput) (*CreateRequestResult, error) {
	foodID := uuid.Nil
	if raw := strings.TrimSpace(in.FoodID); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.Mark(ErrInvalidFoodID, errs.ErrValidation)
		}
		foodID = parsed
	}

	r, err := foodrequest.NewFoodRequest(foodID, actor, in.Location, in.Reason, in.Contact, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Requests().Create(ctx, r)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "food request created",
		slog.String("request_id", createdID.String()),
		slog.String("listing_id", foodID.String()))
	publishEvent(ctx, uc.events, uc.logger, shared.Event{
		Type:       shared.EventRequestCreated,
		ListingID:  foodID,
		RequestID:  &createdID,
		ActorEmail: actor.Email,
		OccurredAt: uc.clock.Now(),
	})
	return &CreateRequestResult{RequestID: createdID}, nil
}

// Accept flips the request to accepted and the listing to donated in one transaction.
func (uc *requestCommandsImpl) Accept(ctx context.Context, actor identity.Identity, requestID uuid.UUID) error {
	var foodID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reads().RequestByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrRequestNotFound
			}
			return derr
		}

		l, derr := loadListing(ctx, tx.Reads(), r.FoodID())
		if derr != nil {
			return derr
		}
		if derr = shared.RequireOwner(l, actor); derr != nil {
			return derr
		}

		if derr = r.Accept(); derr != nil {
			return errs.Mark(derr, errs.ErrRequestAlreadyAccepted)
		}
		if derr = tx.Requests().MarkAccepted(ctx, requestID); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, errs.ErrRequestAlreadyAccepted)
			}
			return derr
		}
		foodID = l.ID()
		if derr = tx.Listings().SetStatus(ctx, foodID, listing.StatusDonated); derr != nil {
			// the listing was deleted after it was loaded
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrListingNotFound)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.InfoContext(ctx, "food request accepted",
		slog.String("request_id", requestID.String()),
		slog.String("listing_id", foodID.String()))
	uc.cache.Invalidate(ctx, foodID)
	publishEvent(ctx, uc.events, uc.logger, shared.Event{
		Type:       shared.EventRequestAccepted,
		ListingID:  foodID,
		RequestID:  &requestID,
		ActorEmail: actor.Email,
		OccurredAt: uc.clock.Now(),
	})
	return nil
}
