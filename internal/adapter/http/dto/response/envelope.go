package response

// Envelope is the single success shape every endpoint returns. Errors use
// pkg.HTTPError instead; no endpoint ever answers a bare array or object.
type Envelope struct {
	OK   bool  `json:"ok"`
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries pagination data for list responses.
type Meta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func OK(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

func OKPage(data any, meta Meta) Envelope {
	return Envelope{OK: true, Data: data, Meta: &meta}
}

// Paginate slices items for one page and fills the pagination meta. page is
// 1-based; out-of-range pages yield an empty (non-nil) slice.
func Paginate[T any](items []T, page, pageSize int) ([]T, Meta) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	meta := Meta{Page: page, PageSize: pageSize, Total: len(items)}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, meta
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}
