package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// fakeRowData is the fixture shape manager_test.go fills in; it knows
// how to scan itself into the exact 6-argument destination list
// scanReservation always passes, since that is the only shape the
// package's QueryRow/Query call sites ever use.
type fakeRowData struct {
	id         int64
	userID     string
	resourceID string
	start      time.Time
	end        time.Time
	note       string
	status     string
	scanErr    error
}

func (d fakeRowData) scanInto(dest []interface{}) error {
	if d.scanErr != nil {
		return d.scanErr
	}
	if len(dest) != 6 {
		return fmt.Errorf("fake: unexpected scan arity %d", len(dest))
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

// fakeRow implements pgx.Row over a single fixture row.
type fakeRow struct {
	data fakeRowData
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	return r.data.scanInto(dest)
}

// fakeRows implements pgx.Rows over a fixed fixture slice.
type fakeRows struct {
	data []fakeRowData
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]interface{}, error)               { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...interface{}) error {
	return r.data[r.idx-1].scanInto(dest)
}

// fakePool implements the pool interface with canned, call-ordered
// responses — exactly enough surface for Manager's tests, not a
// general-purpose pgx mock.
type fakePool struct {
	queryRowSeq []fakeRowData
	queryRowIdx int

	querySeq [][]fakeRowData
	queryIdx int
	queryErr error
}

func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	d := p.queryRowSeq[p.queryRowIdx]
	p.queryRowIdx++
	return &fakeRow{data: d}
}

func (p *fakePool) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	if p.queryErr != nil {
		return nil, p.queryErr
	}
	data := p.querySeq[p.queryIdx]
	p.queryIdx++
	return &fakeRows{data: data}, nil
}
