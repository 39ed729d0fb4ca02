package rsvp

// DefaultPageSize is used when a Filter is built without an explicit
// page size (§3).
const DefaultPageSize = 10

const (
	minPageSize = 10
	maxPageSize = 100
)

// Filter is the cursor-paginated read descriptor (§3, §4.2 filter).
// Cursor is nil when the caller asked for the first page.
type Filter struct {
	Cursor     *int64
	PageSize   int64
	UserID     string
	ResourceID string
	Status     Status
	Desc       bool
}

// FilterOption configures a Filter under construction, mirroring
// ReservationFilterBuilder in the original (§9).
type FilterOption func(*Filter)

// WithFilterCursor anchors the page at the given reservation id.
func WithFilterCursor(cursor int64) FilterOption {
	return func(f *Filter) { f.Cursor = &cursor }
}

// WithFilterPageSize overrides the default page size of 10.
func WithFilterPageSize(pageSize int64) FilterOption {
	return func(f *Filter) { f.PageSize = pageSize }
}

// WithFilterUserID scopes the filter to a single user.
func WithFilterUserID(userID string) FilterOption {
	return func(f *Filter) { f.UserID = userID }
}

// WithFilterResourceID scopes the filter to a single resource.
func WithFilterResourceID(resourceID string) FilterOption {
	return func(f *Filter) { f.ResourceID = resourceID }
}

// WithFilterStatus sets the status filter. Unknown normalizes to Pending.
func WithFilterStatus(status Status) FilterOption {
	return func(f *Filter) { f.Status = status }
}

// WithFilterDesc toggles descending id order.
func WithFilterDesc(desc bool) FilterOption {
	return func(f *Filter) { f.Desc = desc }
}

// NewFilter builds a normalized Filter, defaulting PageSize to 10 before
// applying opts, then validating and normalizing exactly once.
func NewFilter(opts ...FilterOption) (Filter, error) {
	f := Filter{PageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&f)
	}
	if err := f.Normalize(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// Validate enforces §4.1's ReservationFilter.validate.
func (f *Filter) Validate() error {
	if f.PageSize < minPageSize || f.PageSize > maxPageSize {
		return errInvalidPageSize(f.PageSize)
	}
	if f.Cursor != nil && *f.Cursor < 0 {
		return errInvalidCursor(*f.Cursor)
	}
	if !ValidStatus(int32(f.Status)) {
		return errInvalidStatus(int32(f.Status))
	}
	return nil
}

// Normalize is Validate followed by the Unknown→Pending status rewrite.
// Idempotent.
func (f *Filter) Normalize() error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Status == StatusUnknown {
		f.Status = StatusPending
	}
	return nil
}

// cursorOrDefault returns the effective cursor value used in the SQL's
// id comparison: MaxInt64 for a cursorless descending filter, 0 for a
// cursorless ascending one (§4.3).
func (f *Filter) cursorOrDefault() int64 {
	if f.Cursor != nil {
		return *f.Cursor
	}
	if f.Desc {
		return maxInt64
	}
	return 0
}

const maxInt64 = int64(^uint64(0) >> 1)

// limit is page_size + 1 + (1 if cursor present) — the over-read that
// lets the pager decide whether prev/next pages exist (§4.3, §9).
func (f *Filter) limit() int64 {
	extra := int64(0)
	if f.Cursor != nil {
		extra = 1
	}
	return f.PageSize + 1 + extra
}

// NextPage yields a descriptor for the next page, or false if there is
// none (§4.4).
func (f *Filter) NextPage(p Pager) (Filter, bool) {
	if p.Next == nil {
		return Filter{}, false
	}
	next := *f
	next.Cursor = p.Next
	return next, true
}

// PrevPage yields a descriptor for the previous page, or false if there
// is none (§4.4).
func (f *Filter) PrevPage(p Pager) (Filter, bool) {
	if p.Prev == nil {
		return Filter{}, false
	}
	prev := *f
	prev.Cursor = p.Prev
	return prev, true
}
