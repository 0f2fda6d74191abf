package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/config"
	"github.com/spec-kit/placement-service/internal/domain"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
}

func newTestAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{
		UserRepo: repo,
		Limiter:  NewLoginLimiter(nil, 10, 0, nil),
	})
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	existing := &domain.User{ID: "u1", Email: "taken@x.edu"}
	repo.On("GetByEmail", mock.Anything, "taken@x.edu").Return(existing, nil)

	_, _, _, err := svc.Signup(context.Background(), "Someone", "taken@x.edu", "pw", "")
	require.Error(t, err)

	domainErr := apperrors.AsDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, apperrors.KindDuplicateKey, domainErr.Kind)
	assert.Equal(t, "Duplicate email", domainErr.Message)
	repo.AssertNotCalled(t, "Create")
}

func TestSignupDefaultsToStudent(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	repo.On("GetByEmail", mock.Anything, "new@x.edu").Return(nil, apperrors.NewNotFound("user"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = "11111111-1111-1111-1111-111111111111"
	}).Return(nil)

	user, token, _, err := svc.Signup(context.Background(), "New", "new@x.edu", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.SubjectID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	_, _, _, err := svc.Signup(context.Background(), "New", "new@x.edu", "pw", "SUPERUSER")
	require.Error(t, err)
	domainErr := apperrors.AsDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, apperrors.KindValidation, domainErr.Kind)
	repo.AssertNotCalled(t, "GetByEmail")
}

func TestLoginIssuesRoleSnapshot(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("correct-horse", 4)
	require.NoError(t, err)
	user := &domain.User{ID: "u1", Email: "c@x.edu", PasswordHash: hash, Role: domain.RolePlacementCoordinator}
	repo.On("GetByEmail", mock.Anything, "c@x.edu").Return(user, nil)

	_, token, _, err := svc.Login(context.Background(), "c@x.edu", "correct-horse")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RolePlacementCoordinator, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("right", 4)
	require.NoError(t, err)
	user := &domain.User{ID: "u1", Email: "c@x.edu", PasswordHash: hash}
	repo.On("GetByEmail", mock.Anything, "c@x.edu").Return(user, nil)

	_, _, _, err = svc.Login(context.Background(), "c@x.edu", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	repo.On("GetByEmail", mock.Anything, "ghost@x.edu").Return(nil, apperrors.NewNotFound("user"))

	_, _, _, err := svc.Login(context.Background(), "ghost@x.edu", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetRole(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	user := &domain.User{ID: "u1", Role: domain.RoleStudent}
	repo.On("GetByID", mock.Anything, "u1").Return(user, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	updated, err := svc.SetRole(context.Background(), "u1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	_, err := svc.SetRole(context.Background(), "u1", "SUPERUSER")
	require.Error(t, err)
	domainErr := apperrors.AsDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, apperrors.KindValidation, domainErr.Kind)
	repo.AssertNotCalled(t, "Update")
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := new(mockUserRepo)
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("current", 4)
	require.NoError(t, err)
	user := &domain.User{ID: "u1", PasswordHash: hash}
	repo.On("GetByID", mock.Anything, "u1").Return(user, nil)

	err = svc.ChangePassword(context.Background(), "u1", "not-current", "next")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertNotCalled(t, "Update")
}

func TestLoginLimiterFailsOpenWithoutRedis(t *testing.T) {
	limiter := NewLoginLimiter(nil, 3, 0, nil)
	assert.True(t, limiter.Allow(context.Background(), "anyone@x.edu"))
}
