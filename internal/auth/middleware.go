package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/repository"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the per-request authorization context: the resolved identity
// and the raw token it was resolved from. Handlers read it, never mutate it.
type Principal struct {
	User     *domain.User
	RawToken string
}

// Authenticator validates bearer tokens and resolves the caller's identity.
type Authenticator struct {
	tokens        *TokenManager
	users         repository.UserRepository
	lookupTimeout time.Duration
	logger        *zap.Logger
}

// NewAuthenticator constructs the authentication middleware. lookupTimeout
// bounds the identity-store query so a slow store cannot hang a request.
func NewAuthenticator(tokens *TokenManager, users repository.UserRepository, lookupTimeout time.Duration, logger *zap.Logger) *Authenticator {
	if lookupTimeout <= 0 {
		lookupTimeout = 20 * time.Second
	}
	return &Authenticator{tokens: tokens, users: users, lookupTimeout: lookupTimeout, logger: logger}
}

// Handle enforces authentication for protected routes. Every failure path
// yields the same generic 401; the internal cause is logged, not leaked.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return a.reject(c, errors.New("missing authorization header"))
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return a.reject(c, errors.New("authorization header is not a bearer token"))
	}
	rawToken := parts[1]

	claims, err := a.tokens.Verify(rawToken)
	if err != nil {
		return a.reject(c, err)
	}

	// Derive from the request context so a client disconnect abandons the
	// lookup; the deadline bounds a slow store.
	ctx, cancel := context.WithTimeout(c.UserContext(), a.lookupTimeout)
	defer cancel()

	user, err := a.users.GetByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			a.logger.Warn("identity lookup timed out",
				zap.String("subject_id", claims.SubjectID),
				zap.Duration("timeout", a.lookupTimeout),
				zap.String("path", c.Path()))
			return apperrors.NewUnauthorized(err)
		}
		return a.reject(c, err)
	}

	c.Locals(principalKey, &Principal{User: user, RawToken: rawToken})
	return c.Next()
}

func (a *Authenticator) reject(c *fiber.Ctx, cause error) error {
	a.logger.Info("authentication rejected",
		zap.Error(cause),
		zap.String("path", c.Path()),
		zap.String("method", c.Method()))
	return apperrors.NewUnauthorized(cause)
}

// CurrentPrincipal retrieves the authorization context set by Handle.
func CurrentPrincipal(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// CurrentUser is a convenience accessor for the resolved identity.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	principal, ok := CurrentPrincipal(c)
	if !ok || principal.User == nil {
		return nil, false
	}
	return principal.User, true
}
