// Package rsvp contains the reservation domain model: the Reservation
// entity, its status lifecycle, the two read-path descriptors (Query and
// Filter), cursor pagination, validation/normalization, and the SQL
// generators that turn a descriptor into the exact statement the storage
// layer issues.
package rsvp

import "fmt"

// Status is the lifecycle state of a Reservation. The zero value,
// StatusUnknown, is never persisted — it is normalized to StatusPending
// before any SQL is built.
type Status int32

const (
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusBlocked
)

// Active reports whether the status participates in conflict detection.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusBlocked:
		return "blocked"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("status(%d)", int32(s))
	}
}

// ParseStatus recognizes the lowercase wire values defined in the
// rsvp.reservation_status enum (§6).
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "unknown":
		return StatusUnknown, true
	case "pending":
		return StatusPending, true
	case "confirmed":
		return StatusConfirmed, true
	case "blocked":
		return StatusBlocked, true
	default:
		return 0, false
	}
}

// ValidStatus reports whether v is one of the recognized enum values.
func ValidStatus(v int32) bool {
	return v >= int32(StatusUnknown) && v <= int32(StatusBlocked)
}
