package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiva/reservation/internal/rsvp"
)

func TestPageCache_NilClientAlwaysMisses(t *testing.T) {
	c := NewPageCache(nil)
	f, err := rsvp.NewFilter()
	assert.NoError(t, err)

	_, _, ok := c.Get(context.Background(), f)
	assert.False(t, ok)

	// Set must not panic against a nil client.
	c.Set(context.Background(), f, nil, rsvp.Pager{})
}

func TestPageCache_NilReceiverIsSafe(t *testing.T) {
	var c *PageCache
	_, _, ok := c.Get(context.Background(), rsvp.Filter{})
	assert.False(t, ok)
	c.Set(context.Background(), rsvp.Filter{}, nil, rsvp.Pager{})
	assert.NoError(t, c.InvalidateResource(context.Background(), "room-1"))
}

func TestFilterCacheKey_DistinguishesCursorAndDesc(t *testing.T) {
	f1, _ := rsvp.NewFilter(rsvp.WithFilterUserID("james"))
	f2, _ := rsvp.NewFilter(rsvp.WithFilterUserID("james"), rsvp.WithFilterDesc(true))
	assert.NotEqual(t, filterCacheKey(f1), filterCacheKey(f2))

	f3, _ := rsvp.NewFilter(rsvp.WithFilterUserID("james"), rsvp.WithFilterCursor(5))
	assert.NotEqual(t, filterCacheKey(f1), filterCacheKey(f3))
}
