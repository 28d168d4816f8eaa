package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedules(n int) []Schedule {
	out := make([]Schedule, n)
	for i := range out {
		out[i] = Schedule{Title: fmt.Sprintf("schedule %d", i)}
	}
	return out
}

func TestNewPageFirstOfThree(t *testing.T) {
	page := NewPage(testSchedules(3), 0, 1)

	assert.Len(t, page.Content, 1)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)
	assert.Equal(t, 1, page.NumberOfElements)
	assert.False(t, page.Empty)
}

func TestNewPageInvariants(t *testing.T) {
	for _, tc := range []struct {
		total, page, size int
	}{
		{0, 0, 20},
		{1, 0, 20},
		{20, 0, 20},
		{21, 1, 20},
		{5, 0, 2},
		{5, 2, 2},
		{5, 7, 2}, // past the end
	} {
		t.Run(fmt.Sprintf("total=%d page=%d size=%d", tc.total, tc.page, tc.size), func(t *testing.T) {
			page := NewPage(testSchedules(tc.total), tc.page, tc.size)

			assert.Equal(t, len(page.Content), page.NumberOfElements)
			assert.Equal(t, page.NumberOfElements == 0, page.Empty)
			assert.Equal(t, page.PageNumber >= page.TotalPages-1, page.Last)
			assert.Equal(t, tc.total, page.TotalElements)
		})
	}
}

func TestNewPagePastLastPage(t *testing.T) {
	page := NewPage(testSchedules(3), 9, 2)

	assert.Empty(t, page.Content)
	assert.True(t, page.Last)
	assert.True(t, page.Empty)
	assert.Equal(t, 3, page.TotalElements)
}

func TestNewPageDefaultsSize(t *testing.T) {
	page := NewPage(testSchedules(25), 0, 0)

	require.Equal(t, DefaultPageSize, page.PageSize)
	assert.Len(t, page.Content, DefaultPageSize)
	assert.Equal(t, 2, page.TotalPages)
}

func TestNewPageCopiesContent(t *testing.T) {
	all := testSchedules(2)
	page := NewPage(all, 0, 20)

	page.Content[0].Title = "mutated"
	assert.Equal(t, "schedule 0", all[0].Title)
}
