package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/dto"
	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/service"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// AuthHandler exposes signup, login, and account endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("request body must be valid JSON")
	}

	var fieldErrors []string
	if req.Name == "" {
		fieldErrors = append(fieldErrors, "name is required")
	}
	if req.Email == "" {
		fieldErrors = append(fieldErrors, "email is required")
	}
	if req.Password == "" {
		fieldErrors = append(fieldErrors, "password is required")
	}
	if len(fieldErrors) > 0 {
		return apperrors.NewValidationError(fieldErrors...)
	}

	user, token, exp, err := h.auth.Signup(c.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("request body must be valid JSON")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password are required")
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrTooManyAttempts) {
			return fiber.NewError(http.StatusTooManyRequests, "too many login attempts")
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(errors.New("no principal on request"))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewUserResponse(user),
	})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(errors.New("no principal on request"))
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("request body must be valid JSON")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current and new passwords are required")
	}

	if err := h.auth.ChangePassword(c.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password updated",
	})
}
