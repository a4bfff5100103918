package pagination

// Window is the slice of an accepted result sequence shown on one page.
// Invariant: 0 <= First <= Last <= Total.
type Window struct {
	Total      int `json:"total"`
	Size       int `json:"size"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	// First is inclusive, Last exclusive.
	First int `json:"first"`
	Last  int `json:"last"`
}

// NewWindow computes the window of page over total items. page and size are
// coerced to at least 1; a page past the end yields an empty window.
func NewWindow(total, size, page int) Window {
	if total < 0 {
		total = 0
	}
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	return Window{
		Total:      total,
		Size:       size,
		Page:       page,
		TotalPages: (total + size - 1) / size,
		First:      min((page-1)*size, total),
		Last:       min(page*size, total),
	}
}

func (w Window) HasPrevious() bool {
	return w.Page > 1
}

func (w Window) HasNext() bool {
	return w.Page < w.TotalPages
}

func (w Window) Empty() bool {
	return w.First == w.Last
}

// Slice returns the part of items covered by the window.
func Slice[T any](items []T, w Window) []T {
	first := min(w.First, len(items))
	last := min(w.Last, len(items))
	return items[first:last]
}
