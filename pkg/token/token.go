// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "scorebook"

var (
	ErrEmptyToken   = errors.New("token string is empty")
	ErrEmptySecret  = errors.New("jwt secret key is empty")
	ErrExpired      = errors.New("token has expired")
	ErrBadSignature = errors.New("token signature is invalid")
)

// Claims identifies the scoring operator holding the token.
type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 access token for operator.
func GenerateJWT(operator, secretKey string, expiryMinutes int, now time.Time) (string, error) {
	if secretKey == "" {
		return "", ErrEmptySecret
	}
	claims := &Claims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
}

// ValidateJWT parses, validates, and returns claims from a JWT string.
func ValidateJWT(tokenString, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if secretKey == "" {
		return nil, ErrEmptySecret
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, ErrBadSignature
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}
	if !tok.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.Operator == "" {
		return nil, errors.New("operator claim is missing")
	}
	return claims, nil
}
