package shared

import "github.com/golang-jwt/jwt/v4"

type AdminClaims struct {
	UserId *string `json:"userId"`
	Role   *string `json:"role"`
	jwt.RegisteredClaims
}

func (a *AdminClaims) Valid() error {
	return nil
}
