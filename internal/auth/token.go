package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/placement-service/internal/domain"
)

// Token codec failures. The authentication middleware collapses these into a
// generic 401 for clients; callers that need the distinction (logs, tests)
// check with errors.Is.
var (
	ErrNoSecret       = errors.New("token signing secret is not configured")
	ErrTokenMalformed = errors.New("token is malformed or has an invalid signature")
	ErrTokenExpired   = errors.New("token has expired")
)

// TokenManager issues and verifies signed access tokens. Verification is
// purely cryptographic/structural: it never consults the identity store.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customises a TokenManager.
type Option func(*TokenManager)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(tm *TokenManager) {
		tm.now = now
	}
}

// NewTokenManager builds a manager. TTL defaults to 60 minutes.
func NewTokenManager(secret string, ttlMinutes int, opts ...Option) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	tm := &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// Claims is the signed assertion carried by an access token. Role is a
// snapshot taken at issuance; a later role change does not take effect until
// the token expires.
type Claims struct {
	SubjectID string      `json:"sub"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the subject. Fails with ErrNoSecret
// when no signing secret was configured.
func (tm *TokenManager) Issue(subjectID string, role domain.Role) (string, time.Time, error) {
	if len(tm.secret) == 0 {
		return "", time.Time{}, ErrNoSecret
	}

	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the signature and expiry and returns the claims. It is
// idempotent: verifying the same token twice yields the same result.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	if len(tm.secret) == 0 {
		return nil, ErrNoSecret
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tm.now),
	)
	parsed, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		// A bad signature outranks a stale expiry: a tampered token is
		// malformed no matter what its payload says.
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrTokenMalformed
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
