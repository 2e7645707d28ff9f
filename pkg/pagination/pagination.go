package pagination

const (
	// DefaultItemsPerPage is the standard page size when one is not provided.
	DefaultItemsPerPage = 50
	// MaxItemsPerPage caps how many records any listing can request.
	MaxItemsPerPage = 100
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page         int
	ItemsPerPage int
}

// Meta describes the slice a listing returned.
type Meta struct {
	Total        int `json:"total"`
	Page         int `json:"page"`
	ItemsPerPage int `json:"items_per_page"`
	Pages        int `json:"pages"`
}

// Page is the listing envelope: one page of data plus its metadata.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// NormalizeItemsPerPage enforces the configured default and maximum sizes.
func NormalizeItemsPerPage(itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return DefaultItemsPerPage
	}
	if itemsPerPage > MaxItemsPerPage {
		return MaxItemsPerPage
	}
	return itemsPerPage
}

// Paginate slices items into the requested page. A non-positive or
// out-of-range page number is clamped to page 1 rather than rejected.
func Paginate[T any](items []T, p Params) Page[T] {
	perPage := NormalizeItemsPerPage(p.ItemsPerPage)
	total := len(items)

	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}

	page := p.Page
	if page < 1 || page > pages {
		page = 1
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Data: data,
		Pagination: Meta{
			Total:        total,
			Page:         page,
			ItemsPerPage: perPage,
			Pages:        pages,
		},
	}
}
