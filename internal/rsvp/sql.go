package rsvp

import (
	"fmt"
	"strings"
	"time"
)

// ToSQL generates the inlined SELECT for the cursor-paginated filter path
// (§4.3). Deterministic: same Filter, byte-identical string, exercised by
// §8 scenarios E3/E4.
//
// user_id and resource_id are untrusted and are not parameter-bound —
// building the predicate this way (rather than $N placeholders) is what
// keeps the generated text byte-identical to §8's E3–E5. Instead every
// value goes through sqlQuote, which escapes embedded quotes the way a
// literal SQL string requires; ordinary values like "james id" render
// unchanged, so E3–E5 stay byte-for-byte while a quote-bearing value can
// no longer break out of the string.
func (f *Filter) ToSQL() string {
	var b strings.Builder

	fmt.Fprintf(&b, "SELECT * FROM rsvp.reservations WHERE status = '%s'::rsvp.reservation_status AND ", f.Status)

	if f.Desc {
		fmt.Fprintf(&b, "id <= %d AND ", f.cursorOrDefault())
	} else {
		fmt.Fprintf(&b, "id >= %d AND ", f.cursorOrDefault())
	}

	b.WriteString(userResourceCond(f.UserID, f.ResourceID))
	b.WriteString(" ")

	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	fmt.Fprintf(&b, "ORDER BY id %s LIMIT %d", dir, f.limit())

	return b.String()
}

// ToSQL generates the time-range SELECT for the streaming query path
// (§4.3), run directly by storage.Manager.Query against the pool. This
// is the exact text §8's E5 pins.
func (q *Query) ToSQL() string {
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}

	timespan := fmt.Sprintf("tstzrange('%s', '%s')", rfc3339OrInfinity(q.Start, true), rfc3339OrInfinity(q.End, false))
	cond := userResourceCond(q.UserID, q.ResourceID)

	return fmt.Sprintf(
		"SELECT * FROM rsvp.reservations WHERE %s @> timespan AND status = '%s'::rsvp.reservation_status AND %s ORDER BY lower(timespan) %s",
		timespan, q.Status, cond, dir,
	)
}

// userResourceCond implements §4.3's user_resource_cond: TRUE when
// neither id is supplied, an equality clause for whichever is, and an
// AND'd pair when both are.
func userResourceCond(userID, resourceID string) string {
	switch {
	case userID == "" && resourceID == "":
		return "TRUE"
	case userID == "":
		return fmt.Sprintf("resource_id = '%s'", sqlQuote(resourceID))
	case resourceID == "":
		return fmt.Sprintf("user_id = '%s'", sqlQuote(userID))
	default:
		return fmt.Sprintf("user_id = '%s' AND resource_id = '%s'", sqlQuote(userID), sqlQuote(resourceID))
	}
}

// sqlQuote escapes a value for interpolation inside a single-quoted SQL
// literal by doubling embedded quotes, the standard SQL escape. Values
// with no quote characters — every case §8's E3–E5 pin — render
// unchanged.
func sqlQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// rfc3339OrInfinity renders a bound in RFC 3339 with an explicit UTC
// offset, or the unbounded Postgres range keyword when the bound is the
// zero value (§4.3, §9).
func rfc3339OrInfinity(t time.Time, start bool) string {
	if t.IsZero() {
		if start {
			return "-infinity"
		}
		return "infinity"
	}
	// "-07:00" (not "Z07:00") so a UTC instant renders as the explicit
	// "+00:00" offset §4.3 calls for, rather than the "Z" shorthand.
	return t.UTC().Format("2006-01-02T15:04:05-07:00")
}
