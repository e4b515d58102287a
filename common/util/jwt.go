package util

import (
	"fmt"
	"time"

	"github.com/campusflow/cert-api/common"
	"github.com/campusflow/cert-api/type/shared"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateAdminToken mints a token for the administrative surfaces. The main
// identity provider lives outside this service; this is used by operational
// tooling and tests.
func GenerateAdminToken(id string) (string, error) {
	expirationTime := time.Now().Add(time.Hour * 24 * 2) // 2 days

	role := "admin"
	claims := &shared.AdminClaims{
		UserId: &id,
		Role:   &role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(*common.Config.JWTSecret))
}

// DecodeAdminToken parses and validates a bearer token issued for the
// administrative surfaces.
func DecodeAdminToken(tokenString string) (*shared.AdminClaims, error) {
	claims := new(shared.AdminClaims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(*common.Config.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("token expired")
	}

	return claims, nil
}
