package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrEmailRegistrado       = errors.New("el email ya está registrado")
	ErrUsernameEnUso         = errors.New("el nombre de usuario ya está en uso")
	ErrNombreDuplicado       = errors.New("ya existe una categoría con ese nombre")
	ErrCategoriaNoExiste     = errors.New("la categoría seleccionada no existe")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)

// CategoriaEnUsoError se devuelve al intentar eliminar una categoría que aún
// tiene productos asociados. Lleva el conteo para el mensaje al usuario.
type CategoriaEnUsoError struct {
	Productos int64
}

func (e *CategoriaEnUsoError) Error() string {
	return fmt.Sprintf(
		"No se puede eliminar la categoría porque tiene %d producto(s) asociado(s). Primero elimina o reasigna los productos.",
		e.Productos,
	)
}
