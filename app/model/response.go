package model

// RemoteError is the structured error body the DMS backend attaches to failed
// requests: a human-readable message plus a domain code (e.g. 1001 for an
// unknown IST ID).
type RemoteError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type SuccessMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

type LoginResponse struct {
	User  Person `json:"user"`
	Token string `json:"token"`
}

type LoginSuccessResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    LoginResponse `json:"data"`
}

type ProfileResponse struct {
	Success bool   `json:"success"`
	Data    Person `json:"data"`
}
