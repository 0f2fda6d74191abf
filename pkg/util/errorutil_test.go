package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		kind    ErrorKind
		status  int
		message string
		errors  []string
	}{
		{
			name:    "validation",
			err:     NewValidationError("name is required"),
			kind:    KindValidation,
			status:  http.StatusBadRequest,
			message: "Validation Error",
			errors:  []string{"name is required"},
		},
		{
			name:    "invalid id",
			err:     NewInvalidID(),
			kind:    KindInvalidID,
			status:  http.StatusNotFound,
			message: "Resource not found",
			errors:  []string{"Invalid ID format"},
		},
		{
			name:    "duplicate key",
			err:     NewDuplicateKey("email"),
			kind:    KindDuplicateKey,
			status:  http.StatusBadRequest,
			message: "Duplicate email",
			errors:  []string{"email already exists"},
		},
		{
			name:    "not found",
			err:     NewNotFound("company"),
			kind:    KindNotFound,
			status:  http.StatusNotFound,
			message: "company not found",
			errors:  []string{"company not found"},
		},
		{
			name:    "unauthorized",
			err:     NewUnauthorized(errors.New("token expired")),
			kind:    KindUnauthorized,
			status:  http.StatusUnauthorized,
			message: "Unauthorized",
			errors:  []string{"Unauthorized"},
		},
		{
			name:    "forbidden",
			err:     NewForbidden(),
			kind:    KindForbidden,
			status:  http.StatusForbidden,
			message: "Forbidden",
			errors:  []string{"Forbidden"},
		},
		{
			name:    "internal",
			err:     NewInternalError(errors.New("boom")),
			kind:    KindInternal,
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
			errors:  []string{"Internal Server Error"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			domainErr := AsDomainError(tc.err)
			require.NotNil(t, domainErr)
			assert.Equal(t, tc.kind, domainErr.Kind)
			assert.Equal(t, tc.status, domainErr.HTTPStatus)
			assert.Equal(t, tc.message, domainErr.Message)
			assert.Equal(t, tc.errors, domainErr.Errors)
		})
	}
}

func TestValidationErrorDefaultsMessage(t *testing.T) {
	domainErr := AsDomainError(NewValidationError())
	require.NotNil(t, domainErr)
	assert.Equal(t, []string{"invalid request"}, domainErr.Errors)
}

func TestAsDomainErrorUnwraps(t *testing.T) {
	inner := NewDuplicateKey("email")
	wrapped := fmt.Errorf("creating user: %w", inner)

	domainErr := AsDomainError(wrapped)
	require.NotNil(t, domainErr)
	assert.Equal(t, KindDuplicateKey, domainErr.Kind)
}

func TestAsDomainErrorPlainError(t *testing.T) {
	assert.Nil(t, AsDomainError(errors.New("plain")))
	assert.Nil(t, AsDomainError(nil))
}

func TestUnauthorizedKeepsCauseInternal(t *testing.T) {
	cause := errors.New("identity lookup timed out")
	domainErr := AsDomainError(NewUnauthorized(cause))
	require.NotNil(t, domainErr)

	// The cause is reachable for logging but never part of the wire body.
	assert.ErrorIs(t, domainErr, cause)
	assert.Equal(t, []string{"Unauthorized"}, domainErr.Errors)
}
