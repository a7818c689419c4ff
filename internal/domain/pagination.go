package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery is the pagination input shared by every list operation.
// Pages are 1-indexed.
type PageQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the query into valid bounds so repositories never see a
// zero or runaway page size.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Page is the uniform paginated response shape.
type Page[T any] struct {
	Data     []T   `json:"data"`
	Page     int   `json:"page"`
	LastPage int   `json:"last_page"`
	Total    int64 `json:"total"`
}

// NewPage builds a Page, computing lastPage = ceil(total / pageSize).
func NewPage[T any](data []T, q PageQuery, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	return Page[T]{
		Data:     data,
		Page:     q.Page,
		LastPage: lastPage,
		Total:    total,
	}
}
