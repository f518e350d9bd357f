// Package token issues and verifies the HS256 bearer tokens handed out by the
// auth endpoints. Tokens carry domain.Claims and nothing about credentials.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fastygo/todo/domain"
)

type claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a shared secret.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option tweaks an Issuer.
type Option func(*Issuer)

// WithIssuer stamps and later requires the iss claim.
func WithIssuer(name string) Option {
	return func(i *Issuer) { i.issuer = name }
}

// WithTTL makes tokens expire. Zero keeps tokens valid forever.
func WithTTL(ttl time.Duration) Option {
	return func(i *Issuer) { i.ttl = ttl }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer returns an Issuer for secret.
func NewIssuer(secret string, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token: empty signing secret")
	}
	i := &Issuer{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Issue encodes c into a signed token. Without a TTL the output is deterministic.
func (i *Issuer) Issue(c domain.Claims) (string, error) {
	if !c.Valid() {
		return "", domain.ErrInvalidPayload
	}

	payload := claims{
		UserID: c.UserID,
		Email:  c.Email,
		Name:   c.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: i.issuer,
		},
	}
	if i.ttl > 0 {
		now := i.now()
		payload.IssuedAt = jwt.NewNumericDate(now)
		payload.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(i.secret)
}

// Verify decodes and checks a token. Every failure collapses to domain.ErrInvalidToken.
func (i *Issuer) Verify(raw string) (domain.Claims, error) {
	if raw == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())

	var payload claims
	token, err := parser.ParseWithClaims(raw, &payload, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	now := i.now()
	if !payload.VerifyExpiresAt(now, i.ttl > 0) {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	if i.issuer != "" && !payload.VerifyIssuer(i.issuer, true) {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	out := domain.Claims{UserID: payload.UserID, Email: payload.Email, Name: payload.Name}
	if !out.Valid() {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	return out, nil
}
