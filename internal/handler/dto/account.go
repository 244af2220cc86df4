// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// CreateAccountRequest represents the request body for creating an account.
type CreateAccountRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// MessageResponse carries a human-readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error. The body shape is fixed by the
// contract: a single human-readable field, no internal detail.
type ErrorResponse struct {
	Error string `json:"error"`
}
