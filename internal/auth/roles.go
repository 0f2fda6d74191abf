package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/placement-service/internal/domain"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// RequireRoles restricts a route to the given allow-list. It must run after
// Authenticator.Handle: a missing principal means the middleware chain was
// mis-wired and is reported as an internal error, not a request error.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) (err error) {
		// A broken role check must fail closed.
		defer func() {
			if r := recover(); r != nil {
				err = apperrors.NewInternalError(errors.New("role check panicked"))
			}
		}()

		principal, ok := CurrentPrincipal(c)
		if !ok || principal.User == nil {
			return apperrors.NewInternalError(errors.New("authorization gate invoked without an authenticated principal"))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return apperrors.NewForbidden()
		}
		return c.Next()
	}
}

// RequireAuthenticated permits any authenticated caller regardless of role.
func RequireAuthenticated() fiber.Handler {
	return RequireRoles()
}
