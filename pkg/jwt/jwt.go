// Package jwt emite y verifica los tokens de identidad de la API.
// Los tokens son HS256 con una ventana fija de validez (30 días por defecto);
// no existe mecanismo de refresh: vencido el token, el cliente vuelve a login.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. El middleware los traduce a mensajes distintos
// (token expirado vs token no válido) pero ambos terminan en 401.
var (
	ErrTokenExpirado = errors.New("token expirado")
	ErrTokenInvalido = errors.New("token no válido")
)

// Claims incluye los claims estándar más el identificador del usuario.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Generate genera un token firmado que embebe el ID del usuario,
// válido por expDays días desde su emisión.
func Generate(secret, userID, issuer string, expDays int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expDays) * 24 * time.Hour)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el ID del usuario embebido.
// Devuelve ErrTokenExpirado si pasó la ventana de validez y ErrTokenInvalido
// ante firma incorrecta, formato malformado o claims inconsistentes.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpirado
		}
		return "", ErrTokenInvalido
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalido
	}
	if claims.UserID != "" {
		return claims.UserID, nil
	}
	// Tokens emitidos solo con Subject siguen siendo válidos.
	return claims.Subject, nil
}
