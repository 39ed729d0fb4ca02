package rsvp

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind identifies which domain failure occurred. It mirrors the error
// taxonomy of the original Rust implementation's abi::Error enum one
// variant at a time (see §7), rather than using sentinel errors per kind,
// so that the RPC boundary can do a single type switch.
type Kind int

const (
	KindUnknown Kind = iota
	KindDbError
	KindConfigReadError
	KindConfigParseError
	KindConflictReservation
	KindInvalidTime
	KindInvalidReservationID
	KindInvalidUserID
	KindInvalidResourceID
	KindInvalidPageSize
	KindInvalidCursor
	KindInvalidStatus
	KindNotFound
)

// Error is the domain error type returned by every rsvp and storage
// operation. Detail carries kind-specific context (the conflict detail
// string, the offending id, etc.) for display; it is never parsed back
// out by callers.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDbError:
		return fmt.Sprintf("database error: %s", e.Detail)
	case KindConfigReadError:
		return "config file not found"
	case KindConfigParseError:
		return "config parse error"
	case KindConflictReservation:
		return fmt.Sprintf("conflicting reservation: %s", e.Detail)
	case KindInvalidTime:
		return "invalid start or end time for the reservation"
	case KindInvalidReservationID:
		return fmt.Sprintf("invalid reservation id: %s", e.Detail)
	case KindInvalidUserID:
		return fmt.Sprintf("invalid user id: %q", e.Detail)
	case KindInvalidResourceID:
		return fmt.Sprintf("invalid resource id: %q", e.Detail)
	case KindInvalidPageSize:
		return fmt.Sprintf("invalid page size: %s", e.Detail)
	case KindInvalidCursor:
		return fmt.Sprintf("invalid cursor: %s", e.Detail)
	case KindInvalidStatus:
		return fmt.Sprintf("invalid status: %s", e.Detail)
	case KindNotFound:
		return "reservation not found"
	default:
		return "unknown error"
	}
}

// Is lets errors.Is match on Kind alone, ignoring Detail — two *Error
// values compare equal for errors.Is purposes iff their Kind matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// GRPCStatus implements the interface grpc-go's status.FromError looks
// for, so a plain `return nil, err` at the RPC boundary (§4.5) is enough
// to get the right status code on the wire — the Go analogue of the
// original's `impl From<Error> for tonic::Status`.
func (e *Error) GRPCStatus() *status.Status {
	switch e.Kind {
	case KindConflictReservation:
		return status.New(codes.FailedPrecondition, e.Error())
	case KindInvalidTime, KindInvalidReservationID, KindInvalidUserID,
		KindInvalidResourceID, KindInvalidPageSize, KindInvalidCursor, KindInvalidStatus:
		return status.New(codes.InvalidArgument, e.Error())
	case KindNotFound:
		return status.New(codes.NotFound, e.Error())
	case KindDbError, KindConfigReadError, KindConfigParseError:
		return status.New(codes.Internal, e.Error())
	default:
		return status.New(codes.Unknown, e.Error())
	}
}

func errInvalidTime() error { return &Error{Kind: KindInvalidTime} }
func errInvalidReservationID(id int64) error {
	return &Error{Kind: KindInvalidReservationID, Detail: fmt.Sprintf("%d", id)}
}
func errInvalidUserID(id string) error     { return &Error{Kind: KindInvalidUserID, Detail: id} }
func errInvalidResourceID(id string) error { return &Error{Kind: KindInvalidResourceID, Detail: id} }
func errInvalidPageSize(size int64) error {
	return &Error{Kind: KindInvalidPageSize, Detail: fmt.Sprintf("%d", size)}
}
func errInvalidCursor(cursor int64) error {
	return &Error{Kind: KindInvalidCursor, Detail: fmt.Sprintf("%d", cursor)}
}
func errInvalidStatus(statusVal int32) error {
	return &Error{Kind: KindInvalidStatus, Detail: fmt.Sprintf("%d", statusVal)}
}
