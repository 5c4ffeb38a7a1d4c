package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identify one principal: a user or a restaurant.
type Claims struct {
	PrincipalID uint   `json:"id"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the principal. Expiry is fixed at issuance;
// there is no refresh, clients re-login after the TTL.
func GenerateToken(principalID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		PrincipalID: principalID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims. Every
// failure collapses to ErrInvalidToken so callers cannot leak the cause; the
// underlying error is still wrapped for internal logging.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.PrincipalID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
