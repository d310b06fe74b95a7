package entity

import "time"

// IconoPorDefecto es el glifo asignado a una categoría cuando no se indica otro.
const IconoPorDefecto = "📦"

// Categoria representa una categoría personalizable para productos.
// Nombre es único en todo el sistema (se valida al crear y al renombrar).
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	Icono       string
	Activo      bool
	CreatedByID string
	CreatedBy   *User // poblado en respuestas (username, email); nil si no se cargó
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
