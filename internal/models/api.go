package models

// ErrorResponse is the single error shape the API exposes: a human-readable
// message and nothing else.
type ErrorResponse struct {
	Error string `json:"error"`
}
