package modelv1

// Pagination reports the true totals even when the requested page is out of
// range, so callers can correct their request.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// ListingsPage is the envelope of the paginated search endpoint.
type ListingsPage struct {
	Data       []*Listing `json:"data"`
	Pagination Pagination `json:"pagination"`
}
