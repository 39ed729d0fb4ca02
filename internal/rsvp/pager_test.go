package rsvp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(from, to int64) []Reservation {
	var rows []Reservation
	for i := from; i <= to; i++ {
		rows = append(rows, Reservation{ID: i})
	}
	return rows
}

// Mirrors the original's paginator_should_work test (original_source
// abi/src/types/pager.rs), three pages over a known id range.
func TestTrimPage_ThreePages(t *testing.T) {
	f, err := NewFilter(WithFilterPageSize(10))
	require.NoError(t, err)

	page, pager := TrimPage(&f, ids(1, 11))
	assert.Nil(t, pager.Prev)
	require.NotNil(t, pager.Next)
	assert.Equal(t, int64(10), *pager.Next)
	assert.Len(t, page, 10)

	f2, ok := f.NextPage(pager)
	require.True(t, ok)
	page2, pager2 := TrimPage(&f2, ids(10, 21))
	require.NotNil(t, pager2.Prev)
	assert.Equal(t, int64(11), *pager2.Prev)
	require.NotNil(t, pager2.Next)
	assert.Equal(t, int64(20), *pager2.Next)
	assert.Len(t, page2, 10)

	f3, ok := f2.NextPage(pager2)
	require.True(t, ok)
	page3, pager3 := TrimPage(&f3, ids(20, 26))
	require.NotNil(t, pager3.Prev)
	assert.Equal(t, int64(21), *pager3.Prev)
	assert.Nil(t, pager3.Next)
	assert.Len(t, page3, 6)
}

// E6 — 29 rows traversed page by page via next_page: each row visited
// exactly once in id order, prev set on every page after the first, next
// set on every page before the last.
func TestTrimPage_FullTraversal29Rows(t *testing.T) {
	f, err := NewFilter(WithFilterUserID("james id"), WithFilterPageSize(10))
	require.NoError(t, err)

	// Page 1: no cursor, fetch over-reads by 1 -> ids 1..11 (11 rows).
	page1, pager1 := TrimPage(&f, ids(1, 11))
	assert.Nil(t, pager1.Prev)
	require.NotNil(t, pager1.Next)
	assert.Equal(t, int64(10), *pager1.Next)
	require.Len(t, page1, 10)
	assert.Equal(t, int64(1), page1[0].ID)
	assert.Equal(t, int64(10), page1[len(page1)-1].ID)

	// Page 2: cursor=10, fetch over-reads by 2 -> ids 10..21 (12 rows).
	f2, ok := f.NextPage(pager1)
	require.True(t, ok)
	page2, pager2 := TrimPage(&f2, ids(10, 21))
	require.NotNil(t, pager2.Prev)
	assert.Equal(t, int64(11), *pager2.Prev)
	require.NotNil(t, pager2.Next)
	assert.Equal(t, int64(20), *pager2.Next)
	require.Len(t, page2, 10)
	assert.Equal(t, int64(11), page2[0].ID)
	assert.Equal(t, int64(20), page2[len(page2)-1].ID)

	// Page 3: cursor=20, only 10 rows remain (20..29) — last page.
	f3, ok := f2.NextPage(pager2)
	require.True(t, ok)
	page3, pager3 := TrimPage(&f3, ids(20, 29))
	require.NotNil(t, pager3.Prev)
	assert.Equal(t, int64(21), *pager3.Prev)
	assert.Nil(t, pager3.Next)
	require.Len(t, page3, 9)
	assert.Equal(t, int64(21), page3[0].ID)
	assert.Equal(t, int64(29), page3[len(page3)-1].ID)

	_, ok = f3.NextPage(pager3)
	assert.False(t, ok)

	var visited []int64
	for _, p := range [][]Reservation{page1, page2, page3} {
		for _, r := range p {
			visited = append(visited, r.ID)
		}
	}
	require.Len(t, visited, 29)
	for i, id := range visited {
		assert.Equal(t, int64(i+1), id)
	}
}

func TestPrevPage_NoneAtFirstPage(t *testing.T) {
	f, err := NewFilter(WithFilterPageSize(10))
	require.NoError(t, err)

	_, pager := TrimPage(&f, ids(1, 5))
	_, ok := f.PrevPage(pager)
	assert.False(t, ok)
}
