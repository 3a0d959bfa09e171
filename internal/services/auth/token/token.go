// Package token issues and verifies the HS256 bearer tokens used by the API
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure classes. Callers treat all of them as an
// authentication failure; the split exists for logging
var (
	ErrBadSignature      = errors.New("token: invalid signature")
	ErrMalformed         = errors.New("token: malformed")
	ErrExpired           = errors.New("token: expired")
	ErrUnsupportedFormat = errors.New("token: unsupported format")
	ErrEmptyClaims       = errors.New("token: empty claims")
)

// DefaultTTL applies when no lifetime is configured
const DefaultTTL = time.Hour

// Codec signs and verifies tokens with a shared HS256 secret.
// Tokens are stateless, there is no revocation
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New builds a Codec. A non positive ttl falls back to DefaultTTL
func New(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying username as the subject with iat now and exp now+ttl
func (c *Codec) Issue(username string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates raw and returns the subject username.
// Failures map onto the Err* variants above
func (c *Codec) Verify(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyClaims
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnsupportedFormat
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFormat):
			return "", ErrUnsupportedFormat
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", ErrMalformed
		default:
			return "", ErrMalformed
		}
	}

	if claims.Subject == "" {
		return "", ErrEmptyClaims
	}
	return claims.Subject, nil
}
