// Package jwt adapts github.com/golang-jwt/jwt/v5 to the TokenIssuer port.
// Tokens are HS256-signed and carry only the registered sub, iat and exp claims.
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// AccessTokenTTL is the fixed lifetime of every issued token.
const AccessTokenTTL = 15 * time.Minute

// Compile-time interface satisfaction check.
var _ driven.TokenIssuer = (*Issuer)(nil)

// Issuer signs and validates bearer tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer creates an Issuer signing with secret.
func NewIssuer(secret string, opts ...Option) *Issuer {
	i := &Issuer{
		secret: []byte(secret),
		ttl:    AccessTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue mints a token for subject expiring AccessTokenTTL from now.
func (i *Issuer) Issue(subject string) (string, error) {
	now := i.now()
	claims := jwtlib.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(i.ttl)),
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Validate checks signature and expiry and returns the token's subject.
// An empty token yields driven.ErrMissingAuthorization; an expired one
// driven.ErrTokenExpired; anything else driven.ErrTokenMalformed.
func (i *Issuer) Validate(token string) (string, error) {
	if token == "" {
		return "", driven.ErrMissingAuthorization
	}

	claims := &jwtlib.RegisteredClaims{}
	parsed, err := jwtlib.ParseWithClaims(token, claims, func(t *jwtlib.Token) (any, error) {
		return i.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}),
		jwtlib.WithTimeFunc(i.now),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		return "", mapJWTError(err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", driven.ErrTokenMalformed
	}

	return claims.Subject, nil
}

// mapJWTError collapses library errors into the port's sentinels.
func mapJWTError(err error) error {
	if errors.Is(err, jwtlib.ErrTokenExpired) {
		return driven.ErrTokenExpired
	}
	return driven.ErrTokenMalformed
}
