package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/domain/entity"
	"github.com/lorebel/inventario-api/internal/domain/repository"
	"github.com/lorebel/inventario-api/pkg/jwt"
)

// LocalUser key del usuario autenticado en c.Locals.
const LocalUser = "user"

// AuthMiddleware valida el Bearer Token, resuelve el usuario embebido contra
// el repositorio y lo adjunta (sin hash de password) a c.Locals. Token
// ausente, inválido, expirado o de un usuario inexistente: 401, con mensaje
// específico pero el mismo resultado para el cliente.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "No autorizado, no hay token")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "No autorizado, no hay token")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "No autorizado, no hay token")
		}

		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpirado) {
				return unauthorized(c, "Token expirado")
			}
			return unauthorized(c, "Token no válido")
		}

		user, err := users.GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return unauthorized(c, "Usuario no encontrado")
		}

		// El hash no viaja aguas abajo.
		user.PasswordHash = ""
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.RespuestaError{
		Success: false,
		Message: message,
	})
}

// GetUser devuelve el usuario autenticado del contexto (después del middleware).
func GetUser(c *fiber.Ctx) *entity.User {
	user, _ := c.Locals(LocalUser).(*entity.User)
	return user
}

// GetUserID devuelve el ID del usuario autenticado, o cadena vacía.
func GetUserID(c *fiber.Ctx) string {
	if user := GetUser(c); user != nil {
		return user.ID
	}
	return ""
}
