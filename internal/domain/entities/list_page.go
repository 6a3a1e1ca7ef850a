package entities

// ListPage is the pagination state shared by every list screen: the items of
// the current page plus the (possibly estimated) total count.
//
// TotalCount is never negative. When the upstream response omits an explicit
// total the count is re-derived from page/pageSize on every fetch, never
// accumulated across fetches.

type ListPage struct {
	Items      []Submission      `json:"items"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// HasPendingWork reports whether any item on the page is still in flight.
func (p ListPage) HasPendingWork() bool {
	for _, s := range p.Items {
		if s.HasPendingWork() {
			return true
		}
	}
	return false
}
