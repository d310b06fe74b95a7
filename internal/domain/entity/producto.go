package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un ítem del inventario con relación a su categoría
// y al usuario que lo creó. Imagen es opcional: nil cuando no hay URL.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Stock       int
	CategoriaID string
	Categoria   *Categoria // poblado en respuestas (nombre, icono); nil si no se cargó
	Imagen      *string
	Activo      bool
	CreatedByID string
	CreatedBy   *User // poblado en respuestas (username, email); nil si no se cargó
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
