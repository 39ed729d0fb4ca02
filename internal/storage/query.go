package storage

import (
	"context"

	"github.com/shiva/reservation/internal/rsvp"
)

// QueryResult is one element of a Query stream: either a reservation or
// a terminal error. Once Err is non-nil the channel is closed with no
// further sends, mirroring the original's "forward rows, then break on
// the first error" draining loop.
type QueryResult struct {
	Reservation rsvp.Reservation
	Err         error
}

// Query runs a time-range query (§4.3; a zero Start or End is unbounded
// on that side) and streams matching
// reservations back over a bounded channel, fed by a background
// goroutine — the Go analogue of the original's tokio::spawn feeding an
// mpsc::channel(128), later adapted by internal/rpcservice into a
// server-streamed RPC response. The returned channel is always closed
// by the goroutine, whether the query finishes, errors, or ctx is
// canceled.
func (m *Manager) Query(ctx context.Context, q rsvp.Query) (<-chan QueryResult, error) {
	if err := q.Normalize(); err != nil {
		return nil, err
	}

	rows, err := m.pool.Query(ctx, q.ToSQL())
	if err != nil {
		return nil, wrapDBError(err)
	}

	out := make(chan QueryResult, queryChannelBufferSize)
	go func() {
		defer close(out)
		defer rows.Close()

		for rows.Next() {
			r, scanErr := scanReservation(rows)
			if scanErr != nil {
				send(ctx, out, QueryResult{Err: wrapDBError(scanErr)})
				return
			}
			if !send(ctx, out, QueryResult{Reservation: r}) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			send(ctx, out, QueryResult{Err: wrapDBError(err)})
		}
	}()

	return out, nil
}

// send delivers v on out unless ctx is canceled first, reporting
// whether the value was sent. A canceled context means the consumer
// (a disconnected RPC client, in the common case) is gone — the
// original's equivalent check is `tx.send().await.is_err()`.
func send(ctx context.Context, out chan<- QueryResult, v QueryResult) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
