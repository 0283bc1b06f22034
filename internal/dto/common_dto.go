package dto

// MessageResponse is the envelope for plain success and not-found bodies.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrors is the 422 envelope: one message per failing field.
type ValidationErrors struct {
	Errors map[string]string `json:"errors"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

// Paginated wraps list payloads served page by page.
type Paginated struct {
	Items   interface{} `json:"items"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}
