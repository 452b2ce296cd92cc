//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"

	"foodshare/internal/domain/listing"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []shared.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type recordingInvalidator struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (r *recordingInvalidator) Invalidate(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

var errStatusWrite = errors.New("status write failed")

// failingStatusUoW fails the listing status write with err so the accept pair must roll back.
type failingStatusUoW struct {
	shared.UnitOfWork
	err error
}

func (u failingStatusUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, failingStatusTx{Tx: tx, err: u.err})
	})
}

type failingStatusTx struct {
	shared.Tx
	err error
}

func (t failingStatusTx) Listings() shared.ListingRepository {
	return failingStatusRepo{ListingRepository: t.Tx.Listings(), err: t.err}
}

type failingStatusRepo struct {
	shared.ListingRepository
	err error
}

func (r failingStatusRepo) SetStatus(context.Context, uuid.UUID, listing.Status) error {
	return r.err
}
