package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationCode is the code carried by every ValidationError.
const ValidationCode = "Validation"

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError reports invalid client input. It is always rendered as
// an unprocessable entity, whatever else the caller knows about it.
type ValidationError struct {
	message string
	fields  []FieldError
}

// NewValidationError builds a ValidationError. An empty message falls back
// to a generic one.
func NewValidationError(message string, fields ...FieldError) *ValidationError {
	if message == "" {
		message = "One or more validation errors occurred."
	}
	return &ValidationError{message: message, fields: append([]FieldError(nil), fields...)}
}

// FromValidator converts the output of a go-playground validator into a
// ValidationError. Errors of any other type are wrapped as a single
// field-less entry.
func FromValidator(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError(err.Error())
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: describe(fe),
		})
	}
	return NewValidationError("", fields...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}

func (v *ValidationError) Code() string    { return ValidationCode }
func (v *ValidationError) Message() string { return v.message }

// Fields returns a copy of the field-level details.
func (v *ValidationError) Fields() []FieldError {
	return append([]FieldError(nil), v.fields...)
}

func (v *ValidationError) Error() string {
	if len(v.fields) == 0 {
		return ValidationCode + ": " + v.message
	}
	parts := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		parts = append(parts, f.Message)
	}
	return ValidationCode + ": " + strings.Join(parts, "; ")
}

// MarshalJSON renders the code, message and field details.
func (v *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    string       `json:"code"`
		Message string       `json:"message"`
		Fields  []FieldError `json:"fields,omitempty"`
	}{ValidationCode, v.message, v.fields})
}
