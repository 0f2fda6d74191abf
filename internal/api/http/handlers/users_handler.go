package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/api/dto"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/service"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// UsersHandler exposes admin-only account management endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}

// UpdateRole handles PUT /users/:id/role. The new role takes effect on the
// next login; outstanding tokens keep their role snapshot until expiry.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("request body must be valid JSON")
	}

	user, err := h.auth.SetRole(c.Context(), c.Params("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewUserResponse(user),
	})
}
