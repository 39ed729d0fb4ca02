package storage

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shiva/reservation/internal/rsvp"
)

// conflictExclusionCode is the PostgreSQL error code for an exclusion
// constraint violation, raised by the reservations_conflict GiST
// constraint (migrations/0001_init.up.sql) whenever an INSERT or
// UPDATE would overlap an existing active reservation on the same
// resource.
const conflictExclusionCode = "23P01"

// wrapDBError translates a pgx/pgconn error into the domain error
// taxonomy (§7), mirroring the original's From<sqlx::Error> match on
// (code, schema, table).
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &rsvp.Error{Kind: rsvp.KindNotFound}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == conflictExclusionCode &&
			pgErr.SchemaName == "rsvp" && pgErr.TableName == "reservations" {
			return &rsvp.Error{Kind: rsvp.KindConflictReservation, Detail: pgErr.Message}
		}
	}
	return &rsvp.Error{Kind: rsvp.KindDbError, Detail: err.Error()}
}
