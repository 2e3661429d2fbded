package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// RespondWithError sends a structured error response
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithErrorDetails(w, statusCode, message, nil)
}

// RespondWithErrorDetails sends a structured error response with additional details
func RespondWithErrorDetails(w http.ResponseWriter, statusCode int, message string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error: ErrorDetail{
			Code:      http.StatusText(statusCode),
			Message:   message,
			Details:   details,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	json.NewEncoder(w).Encode(response)
}

// RespondWithValidationErrors sends validation error response
func RespondWithValidationErrors(w http.ResponseWriter, errors []ValidationError) {
	details := make(map[string]interface{})
	details["validation_errors"] = errors

	RespondWithErrorDetails(w, http.StatusUnprocessableEntity, "validation failed", details)
}

// RespondWithInvalidInput turns a decode or validation failure into a 422
// response. Errors that carry no field information are reported against the body.
func RespondWithInvalidInput(w http.ResponseWriter, err error) {
	validationErrors := FormatValidationErrors(err)
	if len(validationErrors) == 0 {
		validationErrors = []ValidationError{{Field: "body", Message: "Invalid request body"}}
	}
	RespondWithValidationErrors(w, validationErrors)
}

// NotFoundHandler answers unknown routes with the structured error body
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	RespondWithError(w, http.StatusNotFound, "not found")
}

// MethodNotAllowedHandler answers known routes hit with the wrong method
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	RespondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
