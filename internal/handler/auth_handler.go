package handler

import (
	"ai-tutor/internal/domain"
	"ai-tutor/internal/dto"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/service"
	"ai-tutor/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validation.NewValidator(),
	}
}

// Login godoc
// @Summary Demo login
// @Description Checks that the student exists and the demo password matches. No token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse login body", zap.Error(err))
		return domain.NewInvalidInputError("request body must be JSON with student_id and password")
	}
	if errs := h.validator.ValidateLoginRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
