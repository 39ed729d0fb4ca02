package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiva/reservation/internal/rsvp"
)

func TestManagerReserve_OK(t *testing.T) {
	start := time.Now().Add(time.Hour)
	end := start.Add(time.Hour)

	p := &fakePool{queryRowSeq: []fakeRowData{
		{id: 1, userID: "james", resourceID: "room-1", start: start, end: end, status: "pending"},
	}}
	m := NewManager(p, nil, nil)

	r := rsvp.NewPending("james", "room-1", start, end, "")
	got, err := m.Reserve(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, rsvp.StatusPending, got.Status)
}

func TestManagerReserve_InvalidSkipsQuery(t *testing.T) {
	p := &fakePool{}
	m := NewManager(p, nil, nil)

	_, err := m.Reserve(context.Background(), rsvp.Reservation{})
	require.Error(t, err)
	var e *rsvp.Error
	require.True(t, errors.As(err, &e))
}

func TestManagerReserve_Conflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23P01", SchemaName: "rsvp", TableName: "reservations", Message: "conflicting reservations"}
	p := &fakePool{queryRowSeq: []fakeRowData{{scanErr: pgErr}}}
	m := NewManager(p, nil, nil)

	start := time.Now().Add(time.Hour)
	r := rsvp.NewPending("james", "room-1", start, start.Add(time.Hour), "")
	_, err := m.Reserve(context.Background(), r)
	require.Error(t, err)

	var e *rsvp.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, rsvp.KindConflictReservation, e.Kind)
}

func TestManagerGet_NotFound(t *testing.T) {
	p := &fakePool{queryRowSeq: []fakeRowData{{scanErr: pgx.ErrNoRows}}}
	m := NewManager(p, nil, nil)

	_, err := m.Get(context.Background(), rsvp.ReservationID(1))
	require.Error(t, err)
	var e *rsvp.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, rsvp.KindNotFound, e.Kind)
}

func TestManagerConfirm_OK(t *testing.T) {
	start := time.Now().Add(time.Hour)
	p := &fakePool{queryRowSeq: []fakeRowData{
		{id: 5, userID: "james", resourceID: "room-1", start: start, end: start.Add(time.Hour), status: "confirmed"},
	}}
	m := NewManager(p, nil, nil)

	got, err := m.Confirm(context.Background(), rsvp.ReservationID(5))
	require.NoError(t, err)
	assert.Equal(t, rsvp.StatusConfirmed, got.Status)
}

func TestManagerUpdateNote_OK(t *testing.T) {
	start := time.Now().Add(time.Hour)
	p := &fakePool{queryRowSeq: []fakeRowData{
		{id: 5, userID: "james", resourceID: "room-1", start: start, end: start.Add(time.Hour), note: "new note", status: "pending"},
	}}
	m := NewManager(p, nil, nil)

	got, err := m.UpdateNote(context.Background(), rsvp.ReservationID(5), "new note")
	require.NoError(t, err)
	assert.Equal(t, "new note", got.Note)
}

func TestManagerCancel_OK(t *testing.T) {
	start := time.Now().Add(time.Hour)
	p := &fakePool{queryRowSeq: []fakeRowData{
		{id: 5, userID: "james", resourceID: "room-1", start: start, end: start.Add(time.Hour), status: "pending"},
	}}
	m := NewManager(p, nil, nil)

	got, err := m.Cancel(context.Background(), rsvp.ReservationID(5))
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestManagerGet_InvalidID(t *testing.T) {
	m := NewManager(&fakePool{}, nil, nil)
	_, err := m.Get(context.Background(), rsvp.ReservationID(0))
	require.Error(t, err)
}

func TestManagerFilter_CacheMissQueriesDB(t *testing.T) {
	start := time.Now().Add(time.Hour)
	p := &fakePool{querySeq: [][]fakeRowData{
		{{id: 1, userID: "james", resourceID: "room-1", start: start, end: start.Add(time.Hour), status: "pending"}},
	}}
	cache := NewPageCache(nil) // nil client: cache always misses, exercising the DB path.
	m := NewManager(p, cache, nil)

	f, err := rsvp.NewFilter(rsvp.WithFilterUserID("james"))
	require.NoError(t, err)

	rows, pager, err := m.Filter(context.Background(), f)
	require.NoError(t, err)
	assert.Nil(t, pager.Next)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].ID)
}

func TestManagerQuery_StreamsAndCloses(t *testing.T) {
	start := time.Now().Add(time.Hour)
	p := &fakePool{querySeq: [][]fakeRowData{
		{
			{id: 1, userID: "james", resourceID: "room-1", start: start, end: start.Add(time.Hour), status: "pending"},
			{id: 2, userID: "james", resourceID: "room-2", start: start, end: start.Add(time.Hour), status: "pending"},
		},
	}}
	m := NewManager(p, nil, nil)

	q, err := rsvp.NewQuery(rsvp.WithQueryUserID("james"))
	require.NoError(t, err)

	ch, err := m.Query(context.Background(), q)
	require.NoError(t, err)

	var ids []int64
	for res := range ch {
		require.NoError(t, res.Err)
		ids = append(ids, res.Reservation.ID)
	}
	assert.Equal(t, []int64{1, 2}, ids)
}
