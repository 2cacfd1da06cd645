package lib

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError represents a clean validation error for APIs
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a structured validation error
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ExtractAndValidateBody extracts and validates the request body into the provided struct type T
func ExtractAndValidateBody[T any](r *http.Request) (*T, error) {
	defer r.Body.Close()

	var body T

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&body); err != nil {
		return nil, err
	}

	if err := validate.Struct(body); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return nil, mapValidationErrors(ve)
		}
		return nil, err
	}

	return &body, nil
}

// ExtractBody decodes the request body without struct validation. Partial
// updates arrive as free-form maps, which the validator cannot walk.
func ExtractBody[T any](r *http.Request) (*T, error) {
	defer r.Body.Close()

	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

func mapValidationErrors(errs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{}

	for _, e := range errs {
		field := strings.ToLower(e.Field())

		var message string
		switch e.Tag() {
		case "required":
			message = field + " is required"
		case "email":
			message = field + " must be a valid email address"
		case "min":
			message = field + " must be at least " + e.Param()
		case "max":
			message = field + " must be at most " + e.Param()
		case "gte":
			message = field + " must be at least " + e.Param()
		case "oneof":
			message = field + " must be one of: " + e.Param()
		case "uuid4":
			message = field + " must be a valid UUID"
		default:
			message = field + " is invalid"
		}

		out.Errors = append(out.Errors, FieldError{Field: field, Message: message})
	}

	return out
}

// SanitizeString trims whitespace and optionally strips control characters
// from user-supplied query values before they reach a filter.
func SanitizeString(s string, trim, collapseSpaces bool) string {
	if trim {
		s = strings.TrimSpace(s)
	}
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
	if collapseSpaces {
		s = strings.Join(strings.Fields(s), " ")
	}
	return s
}
