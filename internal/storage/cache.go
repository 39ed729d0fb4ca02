package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shiva/reservation/internal/rsvp"
)

// PageCache is a Redis-backed cache-aside layer in front of Filter
// (§4.6), grounded on the teacher's PricingRepository.GetDemandSupply:
// the same "try Redis first, fall through to the slow query, populate
// the cache on the way back out" shape, applied here to filter pages
// instead of demand/supply counts.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// filterCacheTTL matches the teacher's redisCacheTTL for demand/supply
// buckets; a filter page is similarly a derived, quickly-recomputable
// view so a short TTL favors freshness over hit rate.
const filterCacheTTL = 30 * time.Second

const filterCacheKeyPrefix = "rsvp:filter:"

// NewPageCache wraps client with the default TTL. client may be nil, in
// which case Get always misses and Set is a no-op.
func NewPageCache(client *redis.Client) *PageCache {
	return &PageCache{client: client, ttl: filterCacheTTL}
}

type cachedPage struct {
	Reservations []rsvp.Reservation `json:"reservations"`
	Pager        rsvp.Pager         `json:"pager"`
}

func filterCacheKey(f rsvp.Filter) string {
	cursor := int64(-1)
	if f.Cursor != nil {
		cursor = *f.Cursor
	}
	return fmt.Sprintf("%s%s:%s:%s:%d:%d:%t",
		filterCacheKeyPrefix, f.UserID, f.ResourceID, f.Status, f.PageSize, cursor, f.Desc)
}

// Get returns a previously cached page for f, if present.
func (c *PageCache) Get(ctx context.Context, f rsvp.Filter) ([]rsvp.Reservation, rsvp.Pager, bool) {
	if c == nil || c.client == nil {
		return nil, rsvp.Pager{}, false
	}
	raw, err := c.client.Get(ctx, filterCacheKey(f)).Bytes()
	if err != nil {
		return nil, rsvp.Pager{}, false
	}
	var cp cachedPage
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, rsvp.Pager{}, false
	}
	return cp.Reservations, cp.Pager, true
}

// Set stores a page for f. Failures are swallowed — the cache is an
// optimization, never a dependency for correctness.
func (c *PageCache) Set(ctx context.Context, f rsvp.Filter, rows []rsvp.Reservation, pager rsvp.Pager) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(cachedPage{Reservations: rows, Pager: pager})
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, filterCacheKey(f), data, c.ttl).Err()
}

// InvalidateResource drops every cached filter page scoped to
// resourceID, plus every page whose filter has no resource id (those
// can list resourceID's rows too), called after a write changes that
// resource's reservations so stale pages aren't served past their
// natural TTL.
func (c *PageCache) InvalidateResource(ctx context.Context, resourceID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	var keys []string
	for _, rid := range []string{resourceID, ""} {
		pattern := fmt.Sprintf("%s*:%s:*", filterCacheKeyPrefix, rid)
		iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("storage: scan filter cache: %w", err)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
