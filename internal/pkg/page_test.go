package pkg

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func slicer(items []int) func(offset, limit int) any {
	return func(offset, limit int) any { return items[offset : offset+limit] }
}

func TestPaginateFirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	p := Paginate(mustURL(t, "/api/projects/"), 1, len(items), slicer(items))
	assert.Equal(t, int64(7), p.Count)
	assert.Equal(t, []int{1, 2, 3}, p.Results)
	require.NotNil(t, p.Next)
	assert.Equal(t, "/api/projects/?page=2", *p.Next)
	assert.Nil(t, p.Previous)
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	p := Paginate(mustURL(t, "/api/projects/?page=3"), 3, len(items), slicer(items))
	assert.Equal(t, []int{7}, p.Results)
	assert.Nil(t, p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, "/api/projects/?page=2", *p.Previous)
}

func TestPaginatePreservesQueryParams(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}

	// 过滤参数必须跟着翻页链接走，否则 next 会退回未过滤全集
	p := Paginate(mustURL(t, "/api/projects/?search=water&category=2"), 1, len(items), slicer(items))
	require.NotNil(t, p.Next)
	assert.Equal(t, "/api/projects/?category=2&page=2&search=water", *p.Next)

	p = Paginate(mustURL(t, "/api/projects/?search=water&category=2&page=2"), 2, len(items), slicer(items))
	require.NotNil(t, p.Previous)
	assert.Equal(t, "/api/projects/?category=2&page=1&search=water", *p.Previous)
}

func TestPaginateBeyondEnd(t *testing.T) {
	items := []int{1, 2}

	p := Paginate(mustURL(t, "/api/projects/?page=9"), 9, len(items), slicer(items))
	assert.Equal(t, []int{}, p.Results)
	assert.Nil(t, p.Next)
}

func TestPaginateZeroPageDefaultsToFirst(t *testing.T) {
	items := []int{1, 2, 3, 4}

	p := Paginate(mustURL(t, "/api/projects/"), 0, len(items), slicer(items))
	assert.Equal(t, []int{1, 2, 3}, p.Results)
}
