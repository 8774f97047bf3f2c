package domain

type Pagination struct {
	Page     int
	PageSize int
}

func (f Pagination) Limit() int {
	return f.PageSize
}

func (f Pagination) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// PageOf returns the slice of items covered by the pagination window.
func PageOf[T any](items []T, p Pagination) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}

	end := min(start+p.Limit(), len(items))

	return items[start:end]
}
