package entity

import "time"

// User representa un usuario del sistema.
// PasswordHash es bcrypt; la contraseña en texto plano nunca se persiste
// ni sale del caso de uso que la hashea.
type User struct {
	ID           string
	Username     string // único, 3-50 caracteres, alfanumérico + guion bajo
	Email        string // único, siempre en minúsculas
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
