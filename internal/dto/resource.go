package dto

// ListParams carries pagination, sorting and filter criteria for list
// endpoints. Page is 1-based. IsActive defaults to true when the caller
// omits it, so listings are active-only unless asked otherwise.
type ListParams struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	IsActive  *bool  `form:"is_active"`

	// Exact and Substring hold column-keyed filter values collected from the
	// entity-specific query parameters each resource declares.
	Exact     map[string]string `form:"-"`
	Substring map[string]string `form:"-"`
}

// Normalize applies pagination defaults.
func (p *ListParams) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
}

// Active returns the effective soft-delete filter value.
func (p *ListParams) Active() bool {
	if p.IsActive == nil {
		return true
	}
	return *p.IsActive
}

// Page is the envelope returned by every list endpoint.
type Page[T any] struct {
	Docs  []T   `json:"docs"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// NewPage builds a page envelope, deriving the page count from the total.
func NewPage[T any](docs []T, total int64, page, limit int) *Page[T] {
	pages := int(total) / limit
	if int(total)%limit != 0 || pages == 0 {
		pages++
	}
	if docs == nil {
		docs = []T{}
	}
	return &Page[T]{Docs: docs, Total: total, Page: page, Pages: pages, Limit: limit}
}

// MessageResponse is a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResultResponse pairs a confirmation message with the persisted record.
type ResultResponse[T any] struct {
	Message string `json:"message"`
	Result  T      `json:"result"`
}
