package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lorebel/inventario-api/internal/application/auth"
	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/domain"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register registra un usuario nuevo y devuelve sus campos públicos más el token.
// POST /api/auth/register (público)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !bindAndValidate(c, &in) {
		return nil
	}

	out, err := h.uc.Register(in)
	if err != nil {
		// El mensaje distingue qué campo colisionó; el status es el mismo.
		switch {
		case errors.Is(err, domain.ErrEmailRegistrado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
				Success: false,
				Message: "El email ya está registrado",
			})
		case errors.Is(err, domain.ErrUsernameEnUso):
			return c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
				Success: false,
				Message: "El nombre de usuario ya está en uso",
			})
		}
		return fmt.Errorf("registrar usuario: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Respuesta{
		Success: true,
		Message: "Usuario registrado exitosamente",
		Data:    out,
	})
}

// Login autentica por email y password y devuelve un token nuevo.
// POST /api/auth/login (público)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !bindAndValidate(c, &in) {
		return nil
	}

	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrCredencialesInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.RespuestaError{
				Success: false,
				Message: "Credenciales inválidas",
			})
		}
		return fmt.Errorf("login: %w", err)
	}
	return c.JSON(dto.Respuesta{
		Success: true,
		Message: "Login exitoso",
		Data:    out,
	})
}

// Profile devuelve el usuario autenticado (sin password).
// GET /api/auth/profile (protegido)
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return unauthorized(c, "Usuario no encontrado")
		}
		return fmt.Errorf("perfil: %w", err)
	}
	return c.JSON(dto.Respuesta{Success: true, Data: out})
}
