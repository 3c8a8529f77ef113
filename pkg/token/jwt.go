// Package token issues and verifies the bearer tokens handed out at signup
// and login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identifies the user a token was issued to.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Manager interface {
	Generate(userID uuid.UUID) (string, error)
	Parse(tokenString string) (*Claims, error)
}

type manager struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

func NewManager(secret string, expiry time.Duration, issuer string) Manager {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &manager{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

func (m *manager) Generate(userID uuid.UUID) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *manager) Parse(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return claims, nil
}
