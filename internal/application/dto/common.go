package dto

// ErrorResponse cuerpo de error HTTP. Code es el nombre del resultado (NOT_FOUND, NOT_EMPTY, ...)
// o VALIDATION, INVALID_BODY, INTERNAL.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
