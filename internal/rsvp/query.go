package rsvp

import "time"

// Query is the time-range read descriptor used by the streaming query
// path (§4.2 query). Zero-value Start/End mean unbounded (±infinity).
type Query struct {
	Start      time.Time
	End        time.Time
	UserID     string
	ResourceID string
	Status     Status
	Desc       bool
}

// QueryOption configures a Query under construction. This is the Go
// analogue of the original's ReservationQueryBuilder (§9 "builder with
// defaults" note) — functional options instead of a derived builder,
// since Go has no derive-macro equivalent; modeled on the pack's
// BuilderOption pattern (see DESIGN.md).
type QueryOption func(*Query)

// WithQueryUserID scopes the query to a single user.
func WithQueryUserID(userID string) QueryOption {
	return func(q *Query) { q.UserID = userID }
}

// WithQueryResourceID scopes the query to a single resource.
func WithQueryResourceID(resourceID string) QueryOption {
	return func(q *Query) { q.ResourceID = resourceID }
}

// WithQueryStart sets the lower bound of the time range.
func WithQueryStart(start time.Time) QueryOption {
	return func(q *Query) { q.Start = start }
}

// WithQueryEnd sets the upper bound of the time range.
func WithQueryEnd(end time.Time) QueryOption {
	return func(q *Query) { q.End = end }
}

// WithQueryStatus sets the status filter. Unknown normalizes to Pending.
func WithQueryStatus(status Status) QueryOption {
	return func(q *Query) { q.Status = status }
}

// WithQueryDesc toggles descending order by lower(timespan).
func WithQueryDesc(desc bool) QueryOption {
	return func(q *Query) { q.Desc = desc }
}

// NewQuery builds a normalized Query, applying opts over the defaults,
// then validating and normalizing exactly once — the observable contract
// is the post-build state, per §9.
func NewQuery(opts ...QueryOption) (Query, error) {
	var q Query
	for _, opt := range opts {
		opt(&q)
	}
	if err := q.Normalize(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Validate enforces §4.1's ReservationQuery.validate.
func (q *Query) Validate() error {
	if !ValidStatus(int32(q.Status)) {
		return errInvalidStatus(int32(q.Status))
	}
	if !q.Start.IsZero() && !q.End.IsZero() {
		if !q.Start.Before(q.End) {
			return errInvalidTime()
		}
	}
	return nil
}

// Normalize is Validate followed by the Unknown→Pending status rewrite
// (§4.1). Idempotent.
func (q *Query) Normalize() error {
	if err := q.Validate(); err != nil {
		return err
	}
	if q.Status == StatusUnknown {
		q.Status = StatusPending
	}
	return nil
}
