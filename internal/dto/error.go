package dto

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
