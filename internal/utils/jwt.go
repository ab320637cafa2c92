package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated is the only error Verify reports.  Library errors
// (expired, malformed, bad signature) are never surfaced to callers.
var ErrUnauthenticated = errors.New("unauthenticated")

// Claims is the identity carried by an access token.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type tokenClaims struct {
	Claims
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens with a process-wide
// secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer builds a TokenIssuer.  ttl controls the exp claim.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the given identity.
func (t *TokenIssuer) Issue(c Claims) (string, error) {
	now := t.now().UTC()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Claims: c,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return tok.SignedString(t.secret)
}

// Verify parses raw and returns its identity claims.
func (t *TokenIssuer) Verify(raw string) (Claims, error) {
	var tc tokenClaims
	tok, err := jwt.ParseWithClaims(raw, &tc, func(tok *jwt.Token) (interface{}, error) {
		// Reject anything that is not HMAC signed.
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !tok.Valid || tc.Claims.ID == "" {
		return Claims{}, ErrUnauthenticated
	}
	return tc.Claims, nil
}
