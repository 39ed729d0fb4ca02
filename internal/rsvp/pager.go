package rsvp

// Pager is the cursor trio attached to a filter page (§3, §4.4). Total is
// reserved and always nil (§9).
type Pager struct {
	Prev  *int64
	Next  *int64
	Total *int64
}

// TrimPage applies the over-read trimming algorithm from §4.4 to rows
// fetched by Filter's SQL (§4.3), which over-reads by 1 (or 2 when a
// cursor was supplied). The returned slice is the page payload, a
// sub-slice of rows; the returned Pager describes prev/next availability.
//
// This mirrors the original's PageInfo::get_pager, operating on a
// VecDeque — here a slice trimmed from both ends.
func TrimPage(f *Filter, rows []Reservation) ([]Reservation, Pager) {
	var pager Pager

	if f.Cursor != nil && len(rows) > 0 {
		// The cursor row itself is the fetch's first row; strip it and
		// the new front becomes the prev anchor.
		rows = rows[1:]
		if len(rows) > 0 {
			id := rows[0].ID
			pager.Prev = &id
		}
	}

	if int64(len(rows)) > f.PageSize {
		rows = rows[:len(rows)-1]
		id := rows[len(rows)-1].ID
		pager.Next = &id
	}

	return rows, pager
}
