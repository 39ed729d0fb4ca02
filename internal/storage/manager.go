package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/shiva/reservation/internal/rsvp"
)

// queryChannelBufferSize bounds the in-flight rows between the Query
// goroutine and its consumer, matching the original's mpsc::channel(128).
const queryChannelBufferSize = 128

// pool is the narrow slice of *pgxpool.Pool the manager depends on.
// Depending on this interface instead of the concrete pool type is
// what lets manager_test.go exercise Manager against a hand-written
// fake — no mocking library in the pack targets pgx's interfaces
// directly (pgxmock is unrepresented in the corpus, and go-sqlmock
// only covers database/sql, which pgx deliberately bypasses), so a
// fake satisfying our own interface is the grounded choice here.
type pool interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Manager implements the reservation core (§4.1-§4.4): conflict-checked
// inserts backed by a PostgreSQL exclusion constraint, status
// transitions, note updates, deletion, point lookup, an unbounded
// streaming query, and a cursor-paginated filter.
type Manager struct {
	pool     pool
	cache    *PageCache
	notifier *Notifier
}

// NewManager builds a Manager over pool. cache and notifier may be nil;
// a nil cache disables filter-page caching and a nil notifier disables
// change notifications (§4.8).
func NewManager(p pool, cache *PageCache, notifier *Notifier) *Manager {
	return &Manager{pool: p, cache: cache, notifier: notifier}
}

func scanReservation(row rowScanner) (rsvp.Reservation, error) {
	var (
		id         int64
		userID     string
		resourceID string
		timespan   pgtype.Range[pgtype.Timestamptz]
		note       string
		statusStr  string
	)
	if err := row.Scan(&id, &userID, &resourceID, &timespan, &note, &statusStr); err != nil {
		return rsvp.Reservation{}, err
	}
	st, ok := rsvp.ParseStatus(statusStr)
	if !ok {
		st = rsvp.StatusUnknown
	}
	r := rsvp.Reservation{
		ID:         id,
		UserID:     userID,
		ResourceID: resourceID,
		Note:       note,
		Status:     st,
	}
	if timespan.Lower.Valid {
		r.Start = timespan.Lower.Time
	}
	if timespan.Upper.Valid {
		r.End = timespan.Upper.Time
	}
	return r, nil
}

const reservationColumns = "id, user_id, resource_id, timespan, note, status"

// Reserve validates r and inserts it as pending. A resource/timespan
// overlap with another active reservation surfaces as
// KindConflictReservation, translated from the reservations_conflict
// exclusion constraint (23P01).
func (m *Manager) Reserve(ctx context.Context, r rsvp.Reservation) (rsvp.Reservation, error) {
	if err := r.Validate(); err != nil {
		return rsvp.Reservation{}, err
	}
	row := m.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO rsvp.reservations (user_id, resource_id, timespan, note, status)
		VALUES ($1, $2, tstzrange($3, $4, '[)'), $5, $6::rsvp.reservation_status)
		RETURNING %s`, reservationColumns),
		r.UserID, r.ResourceID, r.Start, r.End, r.Note, rsvp.StatusPending.String())

	out, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, wrapDBError(err)
	}
	m.notify(ctx, out, "create")
	return out, nil
}

// Confirm moves a pending reservation to confirmed. It is a no-op
// returning KindNotFound if id does not name a pending reservation.
func (m *Manager) Confirm(ctx context.Context, id rsvp.ReservationID) (rsvp.Reservation, error) {
	if err := id.Validate(); err != nil {
		return rsvp.Reservation{}, err
	}
	row := m.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE rsvp.reservations SET status = 'confirmed'::rsvp.reservation_status
		WHERE id = $1 AND status = 'pending'::rsvp.reservation_status
		RETURNING %s`, reservationColumns), int64(id))

	out, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, wrapDBError(err)
	}
	m.notify(ctx, out, "update")
	return out, nil
}

// UpdateNote replaces the note on an existing reservation.
func (m *Manager) UpdateNote(ctx context.Context, id rsvp.ReservationID, note string) (rsvp.Reservation, error) {
	if err := id.Validate(); err != nil {
		return rsvp.Reservation{}, err
	}
	row := m.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE rsvp.reservations SET note = $1
		WHERE id = $2
		RETURNING %s`, reservationColumns), note, int64(id))

	out, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, wrapDBError(err)
	}
	m.notify(ctx, out, "update")
	return out, nil
}

// Cancel deletes a reservation outright (§4.2: cancellation is
// deletion, not a status transition, matching the original's `delete`).
func (m *Manager) Cancel(ctx context.Context, id rsvp.ReservationID) (rsvp.Reservation, error) {
	if err := id.Validate(); err != nil {
		return rsvp.Reservation{}, err
	}
	row := m.pool.QueryRow(ctx, fmt.Sprintf(`
		DELETE FROM rsvp.reservations
		WHERE id = $1
		RETURNING %s`, reservationColumns), int64(id))

	out, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, wrapDBError(err)
	}
	m.notify(ctx, out, "delete")
	return out, nil
}

// Get returns a reservation by id.
func (m *Manager) Get(ctx context.Context, id rsvp.ReservationID) (rsvp.Reservation, error) {
	if err := id.Validate(); err != nil {
		return rsvp.Reservation{}, err
	}
	row := m.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM rsvp.reservations WHERE id = $1`, reservationColumns), int64(id))

	out, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, wrapDBError(err)
	}
	return out, nil
}

// Notifier returns the manager's change notifier, or nil if none was
// configured.
func (m *Manager) Notifier() *Notifier {
	return m.notifier
}

// notify publishes a change event and drops any filter-page cache entries
// it could have made stale, so a page fetched right after a write never
// serves pre-write rows for the remainder of its TTL.
func (m *Manager) notify(ctx context.Context, r rsvp.Reservation, op string) {
	if err := m.cache.InvalidateResource(ctx, r.ResourceID); err != nil {
		log.Warn().Err(err).Str("resource_id", r.ResourceID).Msg("failed to invalidate filter cache")
	}
	if m.notifier == nil {
		return
	}
	m.notifier.Publish(ctx, r, op)
}
