package paginator

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page  int `json:"page" form:"page"`   // Page number (1-indexed)
	Limit int `json:"limit" form:"limit"` // Number of items per page
}

// Paginator contains pagination metadata for a listing.
type Paginator struct {
	Total       int // Total number of items across all pages
	Count       int // Number of items in current page
	PerPage     int // Number of items per page
	CurrentPage int // Current page number (1-indexed)
}

// PaginatorResponse is the response format for pagination metadata.
type PaginatorResponse struct {
	Total       int  `json:"total"`
	Count       int  `json:"count"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}
