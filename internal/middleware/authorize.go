package middleware

import (
	"errors"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

var errNoToken = errors.New("no verified token in context")

// TokenSubject extracts the subject CI from the verified token placed
// in locals by JWTProtected, rejecting non-access tokens.
func TokenSubject(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok || tok == nil {
		return "", errNoToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errNoToken
	}
	if typ, _ := claims["type"].(string); typ != "access" {
		return "", errNoToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errNoToken
	}
	return sub, nil
}

// RequireAuth resolves the token subject to an active account and
// stores it in locals for the handler. Must run after JWTProtected.
func RequireAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ci, err := TokenSubject(c)
		if err != nil {
			return unauthorized(c)
		}

		var user models.User
		if err := db.Where("ci = ?", ci).First(&user).Error; err != nil {
			return unauthorized(c)
		}
		if !user.Activo {
			return unauthorized(c)
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// RoleGuard checks the already-loaded account's role. Chain it after
// RequireAuth: app.Use(JWTProtected, RequireAuth(db), RoleGuard("admin")).
func RoleGuard(rol string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c)
		}
		if user.Rol != rol && user.Rol != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
				Success: false,
				Message: "Se requiere rol " + rol,
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the account loaded by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
		Success: false,
		Message: "Usuario no válido o inactivo",
	})
}
