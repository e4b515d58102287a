package middleware

import (
	"log/slog"

	"github.com/campusflow/cert-api/common"
	"github.com/campusflow/cert-api/type/response"
	"github.com/campusflow/cert-api/type/shared"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Jwt() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.AdminClaims),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Warn("JWT validation failure",
				"error", err,
				"path", c.Path(),
				"method", c.Method(),
				"ip", c.IP())
			return response.SendUnauthorized(c, "Invalid or missing token")
		},
	}
	return jwtware.New(conf)
}

// AdminOnly gates the administrative surfaces: manual batch trigger and
// certificate deletion. It requires Jwt() earlier in the chain.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("auth").(*jwt.Token)
		if !ok {
			return response.SendUnauthorized(c, "Authentication required")
		}

		claims, ok := token.Claims.(*shared.AdminClaims)
		if !ok || claims.Role == nil || *claims.Role != "admin" {
			slog.Warn("Non-admin request to administrative endpoint",
				"path", c.Path(),
				"ip", c.IP())
			return response.SendUnauthorized(c, "Admin access required")
		}

		if claims.UserId != nil {
			c.Locals("user_id", *claims.UserId)
		}

		return c.Next()
	}
}

// GetUserFromContext extracts the authenticated user id from the request
// context.
func GetUserFromContext(c *fiber.Ctx) (string, bool) {
	if userID := c.Locals("user_id"); userID != nil {
		if id, ok := userID.(string); ok {
			return id, true
		}
	}
	return "", false
}
