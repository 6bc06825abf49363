// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

// Messages returned to API clients.
const (
	MessageValidation       = "Validation error"
	MessageQuoteExists      = "Quote already exists"
	MessageInternal         = "Internal Server Error"
	MessageNotFound         = "Not Found"
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageTimeout          = "Request Timeout"
)

// ErrorResponse is the body of a failed quote fetch: {"error": "..."}.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

// MessageResponse is the body of a failed save and of every other error the
// service produces: {"message": "...", "details": [...]}.
type MessageResponse struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
	TraceID string       `json:"traceId,omitempty"`
}

// FieldError describes one invalid field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates a fetch error body.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// NewMessageResponse creates a message error body.
func NewMessageResponse(message string, details ...FieldError) *MessageResponse {
	return &MessageResponse{Message: message, Details: details}
}

// WithTraceID adds a trace ID to the message response.
func (m *MessageResponse) WithTraceID(traceID string) *MessageResponse {
	m.TraceID = traceID
	return m
}

// FieldErrors converts domain violations into response details.
func FieldErrors(violations []domain.Violation) []FieldError {
	out := make([]FieldError, 0, len(violations))
	for _, v := range violations {
		out = append(out, FieldError{Field: v.Field, Message: v.Message})
	}

	return out
}

// GetTraceID returns the trace ID of the request span, or "".
func GetTraceID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}

	sc := trace.SpanFromContext(c.Request.Context()).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}

// MapFetchError maps a quote fetch failure to a status and body.
// Every failure is a 500; the upstream message is passed through when the
// error is one the domain knows about.
func MapFetchError(err error) (int, *ErrorResponse) {
	if classified := domainError(err); classified != nil {
		return http.StatusInternalServerError, NewErrorResponse(classified.Error())
	}

	return http.StatusInternalServerError, NewErrorResponse(MessageInternal)
}

// domainError returns the first typed domain error in err's chain, or nil.
func domainError(err error) error {
	var (
		unavailable *domain.UnavailableError
		notFound    *domain.NotFoundError
		conflict    *domain.ConflictError
		validation  *domain.ValidationError
	)

	switch {
	case errors.As(err, &unavailable):
		return unavailable
	case errors.As(err, &notFound):
		return notFound
	case errors.As(err, &conflict):
		return conflict
	case errors.As(err, &validation):
		return validation
	default:
		return nil
	}
}

// MapSaveError maps a save failure to a status and body.
// Duplicates answer 500 rather than 409 to stay compatible with existing clients.
func MapSaveError(err error) (int, *MessageResponse) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, NewMessageResponse(MessageValidation, FieldErrors(validation.Violations)...)
	}

	if domain.IsConflict(err) {
		return http.StatusInternalServerError, NewMessageResponse(MessageQuoteExists)
	}

	return http.StatusInternalServerError, NewMessageResponse(MessageInternal)
}

// HandleFetchError writes the response for a failed quote fetch.
func HandleFetchError(c *gin.Context, err error) {
	status, resp := MapFetchError(err)
	resp.WithTraceID(GetTraceID(c))

	logFailure(c, status, err)
	c.JSON(status, resp)
}

// HandleSaveError writes the response for a failed save.
func HandleSaveError(c *gin.Context, err error) {
	status, resp := MapSaveError(err)
	resp.WithTraceID(GetTraceID(c))

	logFailure(c, status, err)
	c.JSON(status, resp)
}

// AbortWithMessage stops the handler chain with a message body.
func AbortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewMessageResponse(message).WithTraceID(GetTraceID(c)))
}

func logFailure(c *gin.Context, status int, err error) {
	if status < http.StatusInternalServerError {
		return
	}

	logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
		slog.Int("status", status),
		slog.Any("error", err),
	)
}
