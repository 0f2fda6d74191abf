package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/placement-service/internal/domain"
)

const testSecret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, exp, err := tm.Issue("u1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.SubjectID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestVerifyIsIdempotent(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, _, err := tm.Issue("u1", domain.RoleStudent)
	require.NoError(t, err)

	first, err := tm.Verify(token)
	require.NoError(t, err)
	second, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first.SubjectID, second.SubjectID)
	assert.Equal(t, first.Role, second.Role)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
}

func TestVerifyExpiredToken(t *testing.T) {
	now := time.Now()
	tm := NewTokenManager(testSecret, 60, WithClock(func() time.Time { return now }))

	token, _, err := tm.Issue("u1", domain.RoleStudent)
	require.NoError(t, err)

	// Still valid just before the hour is up.
	now = now.Add(59 * time.Minute)
	_, err = tm.Verify(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, _, err := tm.Issue("u1", domain.RoleStudent)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a byte of the signed payload.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = tm.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	other := NewTokenManager("a-different-secret", 60)

	token, _, err := tm.Issue("u1", domain.RoleStudent)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	_, err := tm.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestIssueWithoutSecret(t *testing.T) {
	tm := NewTokenManager("", 60)

	_, _, err := tm.Issue("u1", domain.RoleStudent)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = tm.Verify("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}
