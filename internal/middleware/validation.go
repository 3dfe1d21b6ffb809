package middleware

import (
	"ai-tutor/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// StudentIDLocal is the fiber Locals key holding the validated int64 student ID.
const StudentIDLocal = "validated_student_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateStudentID validates student_id from the path, falling back to the query string
func (vm *ValidationMiddleware) ValidateStudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("student_id")
		if raw == "" {
			raw = c.Query("student_id")
		}

		id, errs := vm.validator.ValidateStudentID(raw)
		if len(errs) > 0 {
			return errs // This will be handled by ErrorHandler
		}

		c.Locals(StudentIDLocal, id)
		return c.Next()
	}
}
