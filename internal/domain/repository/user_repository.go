package repository

import "github.com/lorebel/inventario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Los métodos Get devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
