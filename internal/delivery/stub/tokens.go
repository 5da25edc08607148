package stub

import (
	"time"

	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "storefront-stub"
	tokenTTL    = 24 * time.Hour
)

// TokenIssuer issues and verifies HS256 development tokens
type TokenIssuer struct {
	key []byte
	now func() time.Time
}

// NewTokenIssuer creates an issuer signing with key
func NewTokenIssuer(key string) *TokenIssuer {
	return &TokenIssuer{key: []byte(key), now: time.Now}
}

// Issue returns a signed token for subject
func (i *TokenIssuer) Issue(subject string) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})

	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

// Verify checks the signature, issuer and expiry and returns the subject
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return claims.Subject, nil
}
