package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest entrada para crear un producto.
// Precio es puntero: el campo es obligatorio pero 0 es un precio válido.
// Imagen vacía se omite del registro (queda null).
type CrearProductoRequest struct {
	Nombre      string           `json:"nombre" validate:"required,min=2,max=100"`
	Descripcion string           `json:"descripcion" validate:"required,min=10,max=500"`
	Precio      *decimal.Decimal `json:"precio" validate:"required,min=0"`
	Stock       int              `json:"stock" validate:"min=0"`
	Categoria   string           `json:"categoria" validate:"required"`
	Imagen      string           `json:"imagen" validate:"omitempty,url"`
}

// ActualizarProductoRequest actualización parcial: solo los campos enviados
// (punteros no nulos) se mutan. Imagen en blanco limpia el campo a null.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=2,max=100"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,min=10,max=500"`
	Precio      *decimal.Decimal `json:"precio" validate:"omitempty,min=0"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Categoria   *string          `json:"categoria"`
	Imagen      *string          `json:"imagen" validate:"omitempty,url"`
	Activo      *bool            `json:"activo"`
}

// ListarProductosParams query params crudos del listado, tal como llegan del
// cliente. La coacción permisiva corre en el caso de uso.
type ListarProductosParams struct {
	Categoria string
	MinPrecio string
	MaxPrecio string
	Search    string
	Sort      string
	Page      string
	Limit     string
}

// ProductoResponse salida de un producto con categoría y creador poblados.
type ProductoResponse struct {
	ID          string               `json:"id"`
	Nombre      string               `json:"nombre"`
	Descripcion string               `json:"descripcion"`
	Precio      decimal.Decimal      `json:"precio"`
	Stock       int                  `json:"stock"`
	Categoria   CategoriaRefResponse `json:"categoria"`
	Imagen      *string              `json:"imagen,omitempty"`
	Activo      bool                 `json:"activo"`
	CreatedBy   CreatedByResponse    `json:"createdBy"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
