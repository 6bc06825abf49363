package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

// bodyField names violations that concern the request body as a whole.
const bodyField = "body"

var (
	// validate is the singleton validator instance.
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance.
// Field names in its errors are the JSON names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("integral", validateIntegral)
	})

	return validate
}

// BindQuote decodes and validates a SaveQuoteRequest body.
// Every problem with the body, including malformed JSON and wrongly typed
// fields, comes back as a *domain.ValidationError.
func BindQuote(c *gin.Context) (domain.Quote, error) {
	var req SaveQuoteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return domain.Quote{}, domain.NewValidationErrors(bindingViolation(err))
	}

	if err := Validator().Struct(&req); err != nil {
		return domain.Quote{}, domain.NewValidationErrors(Violations(err)...)
	}

	return req.ToDomain(), nil
}

// Violations converts validator errors into domain violations.
func Violations(err error) []domain.Violation {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []domain.Violation{{Field: bodyField, Message: err.Error()}}
	}

	out := make([]domain.Violation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, domain.Violation{Field: fe.Field(), Message: validationMessage(fe)})
	}

	return out
}

// fieldMessages overrides the generic messages for specific field/tag pairs.
var fieldMessages = map[string]string{
	"quote.min":  "Quote is required",
	"author.min": "Author is required",
}

// validationMessages maps validation tags to message templates.
// Use {param} as placeholder for the validation parameter.
var validationMessages = map[string]string{
	"required": "Required",
	"integral": "Expected integer, received float",
	"gt":       "Number must be greater than {param}",
	"gte":      "Number must be greater than or equal to {param}",
	"max":      "Number must be less than or equal to {param}",
	"min":      "String must contain at least {param} character(s)",
}

// validationMessage returns a human-readable message for a validation error.
func validationMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	if msg, ok := validationMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}

// bindingViolation describes why the body could not be decoded.
func bindingViolation(err error) domain.Violation {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		maxErr    *http.MaxBytesError
	)

	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = bodyField
		}

		return domain.Violation{
			Field:   field,
			Message: fmt.Sprintf("Expected %s, received %s", expectedKind(typeErr.Type), typeErr.Value),
		}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.Violation{Field: bodyField, Message: "malformed JSON"}
	case errors.Is(err, io.EOF):
		return domain.Violation{Field: bodyField, Message: "request body is required"}
	case errors.As(err, &maxErr):
		return domain.Violation{Field: bodyField, Message: "request body too large"}
	default:
		return domain.Violation{Field: bodyField, Message: err.Error()}
	}
}

// expectedKind names a Go type the way a JSON client thinks of it.
func expectedKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return t.String()
	}
}

// validateIntegral reports whether a float field holds a whole number.
func validateIntegral(fl validator.FieldLevel) bool {
	v := fl.Field().Float()

	return !math.IsInf(v, 0) && v == math.Trunc(v)
}
