package validators_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehublabs/warehub-backend/api/validators"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/pagination"
)

func get(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestParseQueryInt(t *testing.T) {
	value, err := validators.ParseQueryInt(get("/api/v1/items?page=3"), "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, value)

	value, err = validators.ParseQueryInt(get("/api/v1/items"), "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	_, err = validators.ParseQueryInt(get("/api/v1/items?page=two"), "page", 1)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestParsePagination(t *testing.T) {
	params, err := validators.ParsePagination(get("/api/v1/items?page=2&items_per_page=25"))
	require.NoError(t, err)
	assert.Equal(t, pagination.Params{Page: 2, ItemsPerPage: 25}, params)

	params, err = validators.ParsePagination(get("/api/v1/items"))
	require.NoError(t, err)
	assert.Equal(t, pagination.Params{Page: 1, ItemsPerPage: pagination.DefaultItemsPerPage}, params)

	_, err = validators.ParsePagination(get("/api/v1/items?items_per_page=lots"))
	require.Error(t, err)
}
