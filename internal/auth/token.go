package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/bloghub/bloghub-be/internal/models"
)

// TokenTypeBearer is the declared token type returned alongside issued tokens.
const TokenTypeBearer = "Bearer"

// ErrTokenInvalid is the single failure surfaced for malformed, forged and
// expired tokens alike. The wrapped cause stays available for logging.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims is the payload encoded into every session token.
type Claims struct {
	jwt.RegisteredClaims
	UID  int64  `json:"uid"`
	Role string `json:"role"`
}

// TokenCodec issues and verifies signed session tokens. The signing key is
// fixed for the process lifetime; there is no rotation path.
type TokenCodec struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

// NewTokenCodec creates a codec with the process-wide signing key, the issuer
// name, and the token lifetime.
func NewTokenCodec(secret, issuer string, lifetime time.Duration) *TokenCodec {
	return &TokenCodec{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
	}
}

// Issue signs a token for the principal with expiry = now + lifetime.
func (c *TokenCodec) Issue(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
		},
		UID:  p.ID,
		Role: string(p.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify parses and validates a token, returning its claims. Every failure
// mode (bad structure, wrong signature, expired) yields ErrTokenInvalid with
// the underlying cause wrapped for internal logging.
func (c *TokenCodec) Verify(tokenString string) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if _, ok := models.ParseRole(claims.Role); !ok {
		return Claims{}, fmt.Errorf("%w: unknown role %q", ErrTokenInvalid, claims.Role)
	}
	return *claims, nil
}

// Lifetime reports the configured validity window of issued tokens.
func (c *TokenCodec) Lifetime() time.Duration {
	return c.lifetime
}
