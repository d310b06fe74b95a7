package repository

import (
	"github.com/shopspring/decimal"

	"github.com/lorebel/inventario-api/internal/domain/entity"
)

// ProductoFiltro filtros canónicos para el listado de productos,
// ya coaccionados desde los query params del cliente.
// Los límites de precio ausentes quedan en nil: no se defaultean a 0/∞.
type ProductoFiltro struct {
	CategoriaID string
	MinPrecio   *decimal.Decimal
	MaxPrecio   *decimal.Decimal
	Busqueda    string
	Orden       string // expresión estilo "-createdAt"; vacío = -createdAt
	Limit       int
	Offset      int
}

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	// GetByID devuelve (nil, nil) si no existe. Puebla Categoria y CreatedBy.
	GetByID(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
	// List devuelve la ventana solicitada y el total de documentos que
	// coinciden con el filtro (ignorando limit/offset).
	List(filtro ProductoFiltro) ([]*entity.Producto, int64, error)
	// CountByCategoria cuenta productos que referencian una categoría
	// (guardia referencial para el delete de categorías).
	CountByCategoria(categoriaID string) (int64, error)
}
