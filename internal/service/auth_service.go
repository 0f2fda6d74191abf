package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/config"
	"github.com/spec-kit/placement-service/internal/domain"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/repository"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// Auth flow failures surfaced to handlers.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// AuthService coordinates signup, login, and password flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	limiter    *LoginLimiter
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for AuthService.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Limiter    *LoginLimiter
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Signup creates a new account. Role defaults to student; the email
// uniqueness probe here is advisory, the database constraint is the
// authority.
func (s *AuthService) Signup(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, time.Time, error) {
	if role == "" {
		role = domain.RoleStudent
	}
	if !role.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("role must be one of STUDENT, PLACEMENT_COORDINATOR, ADMIN")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateKey("email")
	} else if de := apperrors.AsDomainError(err); de == nil || de.Kind != apperrors.KindNotFound {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		Actor:     events.Actor{UserID: user.ID, Role: user.Role},
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		},
	})

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates a user and issues a token carrying a snapshot of the
// current role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	if ok := s.limiter.Allow(ctx, email); !ok {
		return nil, "", time.Time{}, ErrTooManyAttempts
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if de := apperrors.AsDomainError(err); de != nil && de.Kind == apperrors.KindNotFound {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// SetRole changes a user's role. Tokens issued before the change keep the
// old role until they expire; there is no revocation.
func (s *AuthService) SetRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role must be one of STUDENT, PLACEMENT_COORDINATOR, ADMIN")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all identity records.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
