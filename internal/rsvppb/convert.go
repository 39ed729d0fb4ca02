package rsvppb

import (
	"time"

	"github.com/shiva/reservation/internal/rsvp"
)

// ToTimestamp converts a time.Time to its wire representation. The zero
// time converts to nil, matching the optional start/end fields on
// ReservationQuery.
func ToTimestamp(t time.Time) *Timestamp {
	if t.IsZero() {
		return nil
	}
	return &Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// FromTimestamp converts a wire timestamp back to UTC. A nil timestamp
// converts to the zero time.
func FromTimestamp(ts *Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// FromReservation converts a domain reservation to its wire shape.
func FromReservation(r rsvp.Reservation) *Reservation {
	return &Reservation{
		Id:         r.ID,
		UserId:     r.UserID,
		ResourceId: r.ResourceID,
		Start:      ToTimestamp(r.Start),
		End:        ToTimestamp(r.End),
		Note:       r.Note,
		Status:     int32(r.Status),
	}
}

// ToReservation converts a wire reservation to its domain shape. The
// caller is responsible for validating the result.
func ToReservation(pr *Reservation) rsvp.Reservation {
	if pr == nil {
		return rsvp.Reservation{}
	}
	return rsvp.Reservation{
		ID:         pr.Id,
		UserID:     pr.UserId,
		ResourceID: pr.ResourceId,
		Start:      FromTimestamp(pr.Start),
		End:        FromTimestamp(pr.End),
		Note:       pr.Note,
		Status:     rsvp.Status(pr.Status),
	}
}

// ToQuery converts a wire query to its domain shape.
func ToQuery(pq *ReservationQuery) (rsvp.Query, error) {
	if pq == nil {
		return rsvp.NewQuery()
	}
	opts := []rsvp.QueryOption{
		rsvp.WithQueryUserID(pq.UserId),
		rsvp.WithQueryResourceID(pq.ResourceId),
		rsvp.WithQueryStatus(rsvp.Status(pq.Status)),
		rsvp.WithQueryDesc(pq.Desc),
	}
	if pq.Start != nil {
		opts = append(opts, rsvp.WithQueryStart(FromTimestamp(pq.Start)))
	}
	if pq.End != nil {
		opts = append(opts, rsvp.WithQueryEnd(FromTimestamp(pq.End)))
	}
	return rsvp.NewQuery(opts...)
}

// ToFilter converts a wire filter to its domain shape.
func ToFilter(pf *ReservationFilter) (rsvp.Filter, error) {
	if pf == nil {
		return rsvp.NewFilter()
	}
	opts := []rsvp.FilterOption{
		rsvp.WithFilterUserID(pf.UserId),
		rsvp.WithFilterResourceID(pf.ResourceId),
		rsvp.WithFilterStatus(rsvp.Status(pf.Status)),
		rsvp.WithFilterDesc(pf.Desc),
	}
	if pf.PageSize > 0 {
		opts = append(opts, rsvp.WithFilterPageSize(pf.PageSize))
	}
	if pf.Cursor != nil {
		opts = append(opts, rsvp.WithFilterCursor(*pf.Cursor))
	}
	return rsvp.NewFilter(opts...)
}

// FromPager converts a domain pager to its wire shape.
func FromPager(p rsvp.Pager) *FilterPager {
	return &FilterPager{Prev: p.Prev, Next: p.Next, Total: p.Total}
}
