package model

// PageQuery carries the common list parameters: 1-based page, page size and
// an optional free-text search.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}

// Offset returns the number of rows skipped before the requested page.
func (q PageQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}
