package validation

import (
	"strconv"
	"strings"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStudentID parses a student_id path or query value. Any integer is accepted;
// whether the student exists is decided later.
func (v *Validator) ValidateStudentID(raw string) (int64, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("student_id"))
		return 0, errors
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		errors = append(errors, domain.NewInvalidFormatError("student_id", raw))
		return 0, errors
	}
	return id, nil
}

// ValidateLoginRequest validates the demo login body
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req == nil || req.StudentID == nil {
		errors = append(errors, domain.NewMissingFieldError("student_id"))
	}

	return errors
}
