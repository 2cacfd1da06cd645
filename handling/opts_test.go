package handling

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptions_Defaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/products", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Zero(t, opts.Page)
	assert.Zero(t, opts.PageSize)
	assert.Empty(t, opts.CategoryID)
	assert.Nil(t, opts.IsActive)
}

func TestParseProductListOptions_AllParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/products?category_id=sheep_meat&is_active=true&search=%D9%84%D8%AD%D9%85&page=2&page_size=10&sort_by=price&sort_direction=desc", nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, "sheep_meat", opts.CategoryID)
	require.NotNil(t, opts.IsActive)
	assert.True(t, *opts.IsActive)
	assert.Equal(t, "لحم", opts.SearchTerm)
	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 10, opts.PageSize)
	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, "DESC", opts.SortDirection)
}

func TestParseProductListOptions_RejectsBadValues(t *testing.T) {
	for _, raw := range []string{
		"/products?is_active=maybe",
		"/products?page=abc",
		"/products?page_size=abc",
	} {
		r := httptest.NewRequest(http.MethodGet, raw, nil)
		_, err := ParseProductListOptions(r)
		assert.Error(t, err, "expected %s to fail", raw)
	}
}

func TestParseOrderListOptions(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/orders?status=%D8%AC%D8%AF%D9%8A%D8%AF&limit=5", nil)

	opts := ParseOrderListOptions(r)
	assert.Equal(t, "جديد", opts.Status)
	assert.Equal(t, 5, opts.Limit)
}

func TestParseOrderListOptions_IgnoresInvalidLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/orders?limit=-3", nil)

	opts := ParseOrderListOptions(r)
	assert.Zero(t, opts.Limit)
	assert.Empty(t, opts.Status)
}
