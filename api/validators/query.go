package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/pagination"
)

func ParseQueryInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParsePagination reads the page and items_per_page query parameters. Values
// that are not integers are a client error; out-of-range values are left for
// the pagination layer to clamp.
func ParsePagination(r *http.Request) (pagination.Params, error) {
	page, err := ParseQueryInt(r, "page", 1)
	if err != nil {
		return pagination.Params{}, err
	}
	perPage, err := ParseQueryInt(r, "items_per_page", pagination.DefaultItemsPerPage)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, ItemsPerPage: perPage}, nil
}
