package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/auracanvas/aura-api/internal/domain"
)

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends an error response of the shape {"error": message}
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// OK sends a 200 OK response with data
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// PaymentRequired sends a 402 Payment Required response
func PaymentRequired(w http.ResponseWriter, message string) {
	Error(w, http.StatusPaymentRequired, message)
}

// NotFound sends a 404 Not Found response
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// NotImplemented sends a 501 Not Implemented response
func NotImplemented(w http.ResponseWriter) {
	Error(w, http.StatusNotImplemented, "Not implemented")
}

// InternalError sends a 500 Internal Server Error response
func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}

// DomainError maps a domain error to its status and message. Unrecognized
// errors become the supplied generic 500 message so internals never leak.
func DomainError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, domain.ErrImageDataRequired):
		BadRequest(w, "Image data required")
	case errors.Is(err, domain.ErrNoSession):
		Unauthorized(w, "No session found")
	case errors.Is(err, domain.ErrInvalidSession):
		Unauthorized(w, "Invalid session")
	case errors.Is(err, domain.ErrNoCredits):
		PaymentRequired(w, "No credits remaining")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "Not found")
	default:
		InternalError(w, fallbackMessage)
	}
}
