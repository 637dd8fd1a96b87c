package models

// SearchResultItem is a single title found on the site's search page.
type SearchResultItem struct {
	// ID is the site's slug for the title, e.g. "jujutsu-kaisen-tv-534".
	ID string `json:"id"`
}

// SearchResponse is the response for GET /zoro/:name.
type SearchResponse struct {
	// Results are in document order. Never nil so an empty search
	// serializes as [] rather than null.
	Results []SearchResultItem `json:"results"`
}

// AnimeDetail is the response for GET /zoro/info/:animeId.
type AnimeDetail struct {
	Name        string `json:"name"`
	Synopsis    string `json:"synopsis"`
	PosterImage string `json:"poster_image"`
}

// StatusResponse is the response for GET /status.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse wraps an ErrorDetail for non-2xx API responses.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}
