package dtos

// Page is the envelope of every list endpoint.
type Page[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Generic confirmation response.
type ConfirmationResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
