package domain

import (
	"encoding/json"
	"time"
)

// DefaultPageSize is the page size used by every paginated screen.
const DefaultPageSize = 10

// ListQuery holds the status filter, free-text search, and page position of a
// list screen. It is the wire-facing form of the filter state: Status and
// Search map to the backend's status/search query parameters, Page and Limit
// to page/limit.
type ListQuery struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// Normalize clamps Page and Limit to usable values.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	return q
}

// Pagination is the list metadata block the backend nests under
// data.pagination. The canonical field name for the page count is "pages";
// the bank-loans endpoint emits "totalPages" instead, which is accepted as
// an alias during decoding and normalized into Pages.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

// UnmarshalJSON decodes the metadata block, folding the totalPages alias
// into Pages. Pages wins when both are present.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	var raw struct {
		Total      int `json:"total"`
		Page       int `json:"page"`
		Pages      int `json:"pages"`
		TotalPages int `json:"totalPages"`
		Limit      int `json:"limit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Total = raw.Total
	p.Page = raw.Page
	p.Limit = raw.Limit
	p.Pages = raw.Pages
	if p.Pages == 0 {
		p.Pages = raw.TotalPages
	}
	return nil
}

// PageResult is one page of records plus the backend's pagination metadata.
type PageResult[T any] struct {
	Items      []T
	Pagination Pagination
}

// Timestamps is the created/updated pair every remote record carries.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
