package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// ErrorResponse is a downstream error body. It accepts the common shapes:
//
//	{"message": "..."}
//	{"error": "..."}
//	{"error": {"code": "...", "message": "...", "details": {...}}}
//	{"message": "...", "details": [{"field": "...", "message": "..."}]}
type ErrorResponse struct {
	Code    string
	Message string
	Details []domain.Violation
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

type errorEnvelope struct {
	Error   json.RawMessage    `json:"error"`
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details []domain.Violation `json:"details"`
}

// ParseErrorResponse decodes an error body. It returns nil when the body
// is empty, not JSON, or carries neither a code nor a message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(body, clients.MaxBodyBytes))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}

	out := &ErrorResponse{Code: env.Code, Message: env.Message, Details: env.Details}

	if len(env.Error) > 0 {
		var text string
		var detail errorDetail

		switch {
		case json.Unmarshal(env.Error, &text) == nil:
			if out.Message == "" {
				out.Message = text
			}
		case json.Unmarshal(env.Error, &detail) == nil:
			if detail.Code != "" {
				out.Code = detail.Code
			}
			if detail.Message != "" {
				out.Message = detail.Message
			}
			for field, msg := range detail.Details {
				out.Details = append(out.Details, domain.Violation{Field: field, Message: msg})
			}
		}
	}

	if out.Code == "" && out.Message == "" {
		return nil
	}

	return out
}

// Common external error codes that map to domain errors.
const (
	ExternalCodeNotFound   = "NOT_FOUND"
	ExternalCodeConflict   = "CONFLICT"
	ExternalCodeValidation = "VALIDATION_ERROR"
)

// MapHTTPError maps a failed downstream call to a domain error. Pass the
// client error when no response was received, otherwise the response.
// A 2xx response maps to nil.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entityID string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation, entityID)
}

func mapClientError(err error, serviceName, operation string) error {
	reason := fmt.Sprintf("%s: %v", operation, err)
	if errors.Is(err, context.DeadlineExceeded) {
		reason = operation + ": timed out"
	}

	return domain.NewUnavailableError(serviceName, reason)
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation, entityID string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, entityID)

	case http.StatusConflict:
		return domain.NewConflictError(serviceName, message)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if errResp != nil && len(errResp.Details) > 0 {
			return domain.NewValidationErrors(errResp.Details...)
		}
		return domain.NewValidationError("", message)

	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")

	default:
		if errResp != nil && errResp.Code != "" {
			return MapExternalCode(errResp.Code, message, serviceName, entityID)
		}
		if status >= http.StatusInternalServerError {
			return domain.NewUnavailableError(serviceName, message)
		}
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("unexpected HTTP %d: %s", status, message))
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusConflict:
		return "resource conflict"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}

// MapExternalCode maps an error code from a downstream body to a domain error.
func MapExternalCode(code, message, serviceName, entityID string) error {
	switch code {
	case ExternalCodeNotFound:
		return domain.NewNotFoundError(serviceName, entityID)
	case ExternalCodeConflict:
		return domain.NewConflictError(serviceName, message)
	case ExternalCodeValidation:
		return domain.NewValidationError("", message)
	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}
