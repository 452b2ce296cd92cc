package cache

import (
	"context"
	"encoding/json"
	"errors"
	"hash/maphash"
	"log/slog"
	"sync/atomic"
	"time"

	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	listingKeyPrefix = "foodshare:listing:"
	// generation stripes; a collision only skips a cache fill
	generationSlots = 256
)

// Cmdable is the subset of *redis.Client the cache needs.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// ListingCache is a read-through cache for single listing lookups.
// A nil client disables it.
//
// Every Invalidate bumps a generation for the listing. A fill whose store
// read overlapped an invalidation is not kept, so a row read before a
// mutation committed cannot outlive the mutation in Redis.
type ListingCache struct {
	rdb    Cmdable
	ttl    time.Duration
	logger *slog.Logger

	seed        maphash.Seed
	generations [generationSlots]atomic.Uint64
}

func NewListingCache(rdb Cmdable, ttl time.Duration, logger *slog.Logger) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl, logger: logger, seed: maphash.MakeSeed()}
}

func (c *ListingCache) generation(id uuid.UUID) *atomic.Uint64 {
	return &c.generations[maphash.Bytes(c.seed, id[:])%generationSlots]
}

func (c *ListingCache) Enabled() bool {
	return c.rdb != nil
}

func (c *ListingCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if !c.Enabled() {
		return
	}
	c.generation(id).Add(1)
	c.del(ctx, id)
}

func (c *ListingCache) del(ctx context.Context, id uuid.UUID) {
	if err := c.rdb.Del(ctx, listingKey(id)).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate cached listing",
			slog.String("listing_id", id.String()),
			slog.Any("error", err))
	}
}

// Wrap returns store unchanged when the cache is disabled.
func (c *ListingCache) Wrap(store queries.ListingReadStore) queries.ListingReadStore {
	if !c.Enabled() {
		return store
	}
	return &cachedListingStore{ListingReadStore: store, cache: c}
}

type cachedListingStore struct {
	queries.ListingReadStore
	cache *ListingCache
}

func (s *cachedListingStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	key := listingKey(id)
	raw, err := s.cache.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var view queries.ListingView
		if jerr := json.Unmarshal(raw, &view); jerr == nil {
			return &view, nil
		}
		s.cache.logger.WarnContext(ctx, "discarding undecodable cached listing", slog.String("listing_id", id.String()))
	case !errors.Is(err, redis.Nil):
		s.cache.logger.WarnContext(ctx, "listing cache read failed", slog.Any("error", err))
	}

	gen := s.cache.generation(id)
	before := gen.Load()

	view, err := s.ListingReadStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gen.Load() != before {
		return view, nil
	}

	payload, err := json.Marshal(view)
	if err != nil {
		return view, nil
	}
	if err := s.cache.rdb.Set(ctx, key, payload, s.cache.ttl).Err(); err != nil {
		s.cache.logger.WarnContext(ctx, "listing cache write failed", slog.Any("error", err))
		return view, nil
	}
	// an invalidation that landed during the Set may have deleted before it
	if gen.Load() != before {
		s.cache.del(ctx, id)
	}
	return view, nil
}

func listingKey(id uuid.UUID) string {
	return listingKeyPrefix + id.String()
}
