// Package memstore is a transactional in-memory document store. Writes run
// against a cloned state that replaces the live state only on success.
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/infra/converter"
	"foodshare/internal/usecase/queries"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type memoryState struct {
	listings map[uuid.UUID]*listing.Listing
	requests map[uuid.UUID]*foodrequest.FoodRequest
}

func newMemoryState() memoryState {
	return memoryState{
		listings: map[uuid.UUID]*listing.Listing{},
		requests: map[uuid.UUID]*foodrequest.FoodRequest{},
	}
}

func (s memoryState) clone() memoryState {
	c := memoryState{
		listings: make(map[uuid.UUID]*listing.Listing, len(s.listings)),
		requests: make(map[uuid.UUID]*foodrequest.FoodRequest, len(s.requests)),
	}
	for k, v := range s.listings {
		c.listings[k] = v.Clone()
	}
	for k, v := range s.requests {
		c.requests[k] = v.Clone()
	}
	return c
}

type Store struct {
	mu    sync.RWMutex
	state memoryState
}

func New() *Store {
	return &Store{state: newMemoryState()}
}

// Within serialises writers. The live state is only replaced when fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &storeReads{store: s}
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newMemoryState()
}

func (s *Store) view(fn func(state *memoryState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

type memTx struct {
	state memoryState
}

func (tx *memTx) Listings() shared.ListingRepository { return &listingRepo{state: &tx.state} }
func (tx *memTx) Requests() shared.RequestRepository { return &requestRepo{state: &tx.state} }
func (tx *memTx) Reads() shared.CommandReads         { return &stateReads{state: &tx.state} }

type listingRepo struct {
	state *memoryState
}

func (r *listingRepo) Create(_ context.Context, l *listing.Listing) (uuid.UUID, error) {
	if _, exists := r.state.listings[l.ID()]; exists {
		return uuid.Nil, infra.WrapRepoErr("listing already exists", nil, infra.KindDuplicateKey)
	}
	r.state.listings[l.ID()] = l.Clone()
	return l.ID(), nil
}

func (r *listingRepo) Update(_ context.Context, id uuid.UUID, p listing.Patch, now time.Time) (shared.UpdateResult, error) {
	l, ok := r.state.listings[id]
	if !ok {
		return shared.UpdateResult{}, nil
	}
	l.Apply(p, now)
	return shared.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *listingRepo) SetStatus(_ context.Context, id uuid.UUID, status listing.Status) error {
	l, ok := r.state.listings[id]
	if !ok {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	if status == listing.StatusDonated {
		l.MarkDonated()
	}
	return nil
}

func (r *listingRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.state.listings[id]; !ok {
		return 0, nil
	}
	delete(r.state.listings, id)
	return 1, nil
}

type requestRepo struct {
	state *memoryState
}

func (r *requestRepo) Create(_ context.Context, req *foodrequest.FoodRequest) (uuid.UUID, error) {
	if _, exists := r.state.requests[req.ID()]; exists {
		return uuid.Nil, infra.WrapRepoErr("request already exists", nil, infra.KindDuplicateKey)
	}
	r.state.requests[req.ID()] = req.Clone()
	return req.ID(), nil
}

func (r *requestRepo) MarkAccepted(_ context.Context, id uuid.UUID) error {
	req, ok := r.state.requests[id]
	if !ok {
		return infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	if err := req.Accept(); err != nil {
		return infra.WrapRepoErr("request is no longer pending", err, infra.KindConflict)
	}
	return nil
}

// stateReads reads the transaction's private state without locking.
type stateReads struct {
	state *memoryState
}

func (r *stateReads) ListingByID(_ context.Context, id uuid.UUID) (*listing.Listing, error) {
	return findListing(r.state, id)
}

func (r *stateReads) RequestByID(_ context.Context, id uuid.UUID) (*foodrequest.FoodRequest, error) {
	return findRequest(r.state, id)
}

// storeReads takes the read lock for each call.
type storeReads struct {
	store *Store
}

func (r *storeReads) ListingByID(_ context.Context, id uuid.UUID) (l *listing.Listing, err error) {
	r.store.view(func(state *memoryState) { l, err = findListing(state, id) })
	return l, err
}

func (r *storeReads) RequestByID(_ context.Context, id uuid.UUID) (req *foodrequest.FoodRequest, err error) {
	r.store.view(func(state *memoryState) { req, err = findRequest(state, id) })
	return req, err
}

func findListing(state *memoryState, id uuid.UUID) (*listing.Listing, error) {
	l, ok := state.listings[id]
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return l.Clone(), nil
}

func findRequest(state *memoryState, id uuid.UUID) (*foodrequest.FoodRequest, error) {
	req, ok := state.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	return req.Clone(), nil
}

// ListingReadStore and RequestReadStore views

type ListingReadStore struct {
	store *Store
}

func NewListingReadStore(store *Store) *ListingReadStore {
	return &ListingReadStore{store: store}
}

func (r *ListingReadStore) FindByID(_ context.Context, id uuid.UUID) (view *queries.ListingView, err error) {
	r.store.view(func(state *memoryState) {
		l, ok := state.listings[id]
		if !ok {
			err = infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
			return
		}
		view = converter.ListingToView(l)
	})
	return view, err
}

func (r *ListingReadStore) ListAvailable(_ context.Context) ([]*queries.ListingView, error) {
	views := r.collect(func(l *listing.Listing) bool { return l.IsAvailable() })
	slices.SortStableFunc(views, compareAvailable)
	return views, nil
}

func (r *ListingReadStore) ListAll(_ context.Context) ([]*queries.ListingView, error) {
	views := r.collect(func(*listing.Listing) bool { return true })
	slices.SortStableFunc(views, newestFirst)
	return views, nil
}

func (r *ListingReadStore) ListByDonorEmail(_ context.Context, email string) ([]*queries.ListingView, error) {
	views := r.collect(func(l *listing.Listing) bool { return l.OwnerEmail() == email })
	slices.SortStableFunc(views, newestFirst)
	return views, nil
}

func (r *ListingReadStore) collect(keep func(*listing.Listing) bool) []*queries.ListingView {
	views := []*queries.ListingView{}
	r.store.view(func(state *memoryState) {
		for _, l := range state.listings {
			if keep(l) {
				views = append(views, converter.ListingToView(l))
			}
		}
	})
	return views
}

type RequestReadStore struct {
	store *Store
}

func NewRequestReadStore(store *Store) *RequestReadStore {
	return &RequestReadStore{store: store}
}

func (r *RequestReadStore) ListByRequesterEmail(_ context.Context, email string) ([]*queries.RequestView, error) {
	views := []*queries.RequestView{}
	r.store.view(func(state *memoryState) {
		for _, req := range state.requests {
			if req.OwnerEmail() != email {
				continue
			}
			view := converter.RequestToView(req)
			if l, ok := state.listings[req.FoodID()]; ok {
				view.Food = converter.ListingToView(l)
			}
			views = append(views, view)
		}
	})
	slices.SortStableFunc(views, requestsNewestFirst)
	return views, nil
}

func (r *RequestReadStore) ListByFoodID(_ context.Context, foodID uuid.UUID) ([]*queries.RequestView, error) {
	views := []*queries.RequestView{}
	r.store.view(func(state *memoryState) {
		for _, req := range state.requests {
			if req.FoodID() == foodID {
				views = append(views, converter.RequestToView(req))
			}
		}
	})
	slices.SortStableFunc(views, requestsNewestFirst)
	return views, nil
}

// compareAvailable puts undated listings first, then earliest expiry, then newest.
func compareAvailable(a, b *queries.ListingView) int {
	switch {
	case a.ExpireDate == nil && b.ExpireDate != nil:
		return -1
	case a.ExpireDate != nil && b.ExpireDate == nil:
		return 1
	case a.ExpireDate != nil && b.ExpireDate != nil:
		if c := a.ExpireDate.Compare(*b.ExpireDate); c != 0 {
			return c
		}
	}
	return newestFirst(a, b)
}

func newestFirst(a, b *queries.ListingView) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}

func requestsNewestFirst(a, b *queries.RequestView) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
