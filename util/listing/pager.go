package listing

// WindowSize is how many page buttons a screen shows at once.
const WindowSize = 5

// TotalPages returns ceil(total/perPage), or 0 when there is nothing to show.
func TotalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Clamp pins page into [1, totalPages]. With no pages it returns 0.
func Clamp(page, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Window returns the page numbers to render as buttons: at most WindowSize
// consecutive pages, centred on current where the range allows.
func Window(current, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	current = Clamp(current, totalPages)

	start := current - WindowSize/2
	if hi := max(1, totalPages-WindowSize+1); start > hi {
		start = hi
	}
	if start < 1 {
		start = 1
	}
	end := min(totalPages, start+WindowSize-1)

	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}

// Meta is the navigation state sent along with a page of rows.
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	Window     []int `json:"window"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
	First      *int  `json:"first,omitempty"`
	Prev       *int  `json:"prev,omitempty"`
	Next       *int  `json:"next,omitempty"`
	Last       *int  `json:"last,omitempty"`
}

// BuildMeta computes navigation for the requested page. Page echoes the
// request; the window and the prev/next targets use the clamped page, so a
// request past the end still navigates back into range.
func BuildMeta(total int64, req Request) Meta {
	tp := TotalPages(total, req.PerPage)
	m := Meta{
		Page:       req.page(),
		PerPage:    req.PerPage,
		Total:      total,
		TotalPages: tp,
		Window:     Window(req.Page, tp),
	}
	if tp == 0 {
		return m
	}

	cur := Clamp(req.Page, tp)
	first, last := 1, tp
	m.First, m.Last = &first, &last
	if cur > 1 {
		prev := cur - 1
		m.HasPrev, m.Prev = true, &prev
	}
	if req.page() > tp {
		// past the end: prev leads back to the last real page
		m.HasPrev, m.Prev = true, &last
	}
	if cur < tp && req.page() <= tp {
		next := cur + 1
		m.HasNext, m.Next = true, &next
	}
	return m
}
