package storage

import (
	"context"

	"github.com/shiva/reservation/internal/rsvp"
)

// Filter runs a cursor-paginated filter (§4.4), consulting the page
// cache first and repopulating it on a miss. The over-read-by-1-or-2
// trim (rsvp.TrimPage) always runs against freshly-scanned rows; only
// the already-trimmed page and its pager are cached.
func (m *Manager) Filter(ctx context.Context, f rsvp.Filter) ([]rsvp.Reservation, rsvp.Pager, error) {
	if err := f.Normalize(); err != nil {
		return nil, rsvp.Pager{}, err
	}

	if rows, pager, ok := m.cache.Get(ctx, f); ok {
		return rows, pager, nil
	}

	rawRows, err := m.pool.Query(ctx, f.ToSQL())
	if err != nil {
		return nil, rsvp.Pager{}, wrapDBError(err)
	}
	defer rawRows.Close()

	var all []rsvp.Reservation
	for rawRows.Next() {
		r, err := scanReservation(rawRows)
		if err != nil {
			return nil, rsvp.Pager{}, wrapDBError(err)
		}
		all = append(all, r)
	}
	if err := rawRows.Err(); err != nil {
		return nil, rsvp.Pager{}, wrapDBError(err)
	}

	page, pager := rsvp.TrimPage(&f, all)
	m.cache.Set(ctx, f, page, pager)
	return page, pager, nil
}
