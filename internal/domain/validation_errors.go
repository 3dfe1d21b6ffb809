package domain

import (
	"fmt"
	"strings"
)

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is returned by handlers and middleware; the error handler renders it as 400.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}
