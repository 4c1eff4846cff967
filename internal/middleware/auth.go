package middleware

import (
	"github.com/edificio-gestion/backend/internal/config"
	"github.com/edificio-gestion/backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies the bearer token signature and expiry. Subject
// resolution and the access/refresh type check happen in RequireAuth.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				Success: false,
				Message: "Token inválido o expirado",
			})
		},
	})
}
