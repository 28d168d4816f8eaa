package domain

// DefaultPageSize is applied when a query does not specify a page size. It
// matches the query service's default.
const DefaultPageSize = 20

// Page is the query side's pagination envelope. Field names follow the read
// service's JSON shape, so the same type decodes real responses and is
// produced by the mock layer.
type Page struct {
	Content          []Schedule `json:"content"`
	PageNumber       int        `json:"number"`
	PageSize         int        `json:"size"`
	TotalPages       int        `json:"totalPages"`
	TotalElements    int        `json:"totalElements"`
	First            bool       `json:"first"`
	Last             bool       `json:"last"`
	NumberOfElements int        `json:"numberOfElements"`
	Empty            bool       `json:"empty"`
}

// NewPage slices all into the requested page and derives the envelope fields.
// Pages are zero-based; a page past the end yields empty content with
// Last=true. The caller is expected to pass all already filtered and ordered.
func NewPage(all []Schedule, page, size int) *Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	total := len(all)
	totalPages := (total + size - 1) / size

	start := page * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	content := make([]Schedule, end-start)
	copy(content, all[start:end])

	return &Page{
		Content:          content,
		PageNumber:       page,
		PageSize:         size,
		TotalPages:       totalPages,
		TotalElements:    total,
		First:            page == 0,
		Last:             page >= totalPages-1,
		NumberOfElements: len(content),
		Empty:            len(content) == 0,
	}
}
