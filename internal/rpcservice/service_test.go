package rpcservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shiva/reservation/internal/rsvp"
	"github.com/shiva/reservation/internal/rsvppb"
	"github.com/shiva/reservation/internal/storage"
)

// Local fixture shape mirroring the one in internal/storage's own
// tests — package-private test doubles aren't importable across
// packages, so the RPC layer gets its own narrow fake over the same
// pool surface storage.NewManager accepts structurally.

type row struct {
	id         int64
	userID     string
	resourceID string
	start      time.Time
	end        time.Time
	note       string
	status     string
	scanErr    error
}

func (d row) scanInto(dest []interface{}) error {
	if d.scanErr != nil {
		return d.scanErr
	}
	*(dest[0].(*int64)) = d.id
	*(dest[1].(*string)) = d.userID
	*(dest[2].(*string)) = d.resourceID
	*(dest[3].(*pgtype.Range[pgtype.Timestamptz])) = pgtype.Range[pgtype.Timestamptz]{
		Lower:     pgtype.Timestamptz{Time: d.start, Valid: !d.start.IsZero()},
		Upper:     pgtype.Timestamptz{Time: d.end, Valid: !d.end.IsZero()},
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
	*(dest[4].(*string)) = d.note
	*(dest[5].(*string)) = d.status
	return nil
}

type fakeRow struct{ data row }

func (r *fakeRow) Scan(dest ...interface{}) error { return r.data.scanInto(dest) }

type fakeRows struct {
	data []row
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]interface{}, error)               { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                               { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...interface{}) error { return r.data[r.idx-1].scanInto(dest) }

type fakePool struct {
	queryRow row
	rows     []row
}

func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return &fakeRow{data: p.queryRow}
}

func (p *fakePool) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return &fakeRows{data: p.rows}, nil
}

func TestReserve_MissingReservationRejected(t *testing.T) {
	svc := New(storage.NewManager(&fakePool{}, nil, nil))
	_, err := svc.Reserve(context.Background(), &rsvppb.ReserveRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReserve_OK(t *testing.T) {
	start := time.Now().Add(time.Hour)
	p := &fakePool{queryRow: row{id: 1, userID: "james", resourceID: "room-1", start: start, end: start.Add(time.Hour), status: "pending"}}
	svc := New(storage.NewManager(p, nil, nil))

	resp, err := svc.Reserve(context.Background(), &rsvppb.ReserveRequest{
		Reservation: &rsvppb.Reservation{
			UserId:     "james",
			ResourceId: "room-1",
			Start:      rsvppb.ToTimestamp(start),
			End:        rsvppb.ToTimestamp(start.Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Reservation.Id)
}

func TestReserve_ConflictTranslatesToFailedPrecondition(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23P01", SchemaName: "rsvp", TableName: "reservations", Message: "conflict"}
	p := &fakePool{queryRow: row{scanErr: pgErr}}
	svc := New(storage.NewManager(p, nil, nil))

	start := time.Now().Add(time.Hour)
	_, err := svc.Reserve(context.Background(), &rsvppb.ReserveRequest{
		Reservation: &rsvppb.Reservation{
			UserId: "james", ResourceId: "room-1",
			Start: rsvppb.ToTimestamp(start), End: rsvppb.ToTimestamp(start.Add(time.Hour)),
		},
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestGet_NotFoundTranslatesToNotFoundCode(t *testing.T) {
	p := &fakePool{queryRow: row{scanErr: pgx.ErrNoRows}}
	svc := New(storage.NewManager(p, nil, nil))

	_, err := svc.Get(context.Background(), &rsvppb.GetRequest{Id: 1})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestFilter_MissingFilterRejected(t *testing.T) {
	svc := New(storage.NewManager(&fakePool{}, nil, nil))
	_, err := svc.Filter(context.Background(), &rsvppb.FilterRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestFilter_OK(t *testing.T) {
	start := time.Now().Add(time.Hour)
	p := &fakePool{rows: []row{
		{id: 1, userID: "james", resourceID: "room-1", start: start, end: start.Add(time.Hour), status: "pending"},
	}}
	svc := New(storage.NewManager(p, nil, nil))

	resp, err := svc.Filter(context.Background(), &rsvppb.FilterRequest{
		Filter: &rsvppb.ReservationFilter{UserId: "james"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(1), resp.Reservations[0].Id)
}

func TestListen_UnimplementedWithoutNotifier(t *testing.T) {
	svc := New(storage.NewManager(&fakePool{}, nil, nil))
	err := svc.Listen(&rsvppb.ListenRequest{}, nil)
	require.Error(t, err)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestListen_StreamsNotifierEvents(t *testing.T) {
	notifier := storage.NewNotifier()
	svc := New(storage.NewManager(&fakePool{}, nil, notifier))

	ctx, cancel := context.WithCancel(context.Background())
	stream := newFakeListenStream(ctx)

	done := make(chan error, 1)
	go func() { done <- svc.Listen(&rsvppb.ListenRequest{}, stream) }()

	// Give Listen time to subscribe before publishing.
	time.Sleep(10 * time.Millisecond)
	notifier.Publish(context.Background(), rsvp.Reservation{ID: 9}, "create")

	select {
	case resp := <-stream.sent:
		assert.Equal(t, int64(9), resp.Reservation.Id)
		assert.Equal(t, "create", resp.Op)
	case <-time.After(time.Second):
		t.Fatal("expected a streamed event")
	}

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after cancel")
	}
}
