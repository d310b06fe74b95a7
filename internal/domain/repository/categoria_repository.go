package repository

import "github.com/lorebel/inventario-api/internal/domain/entity"

// CategoriaFiltro filtros canónicos para el listado de categorías,
// ya coaccionados desde los query params del cliente.
type CategoriaFiltro struct {
	Busqueda string // término ya validado; el adaptador lo escapa antes de usarlo
	Activo   *bool  // nil = sin filtro (distinto de false)
	Orden    string // expresión de orden estilo "-createdAt"; vacío = nombre ascendente
	Limit    int
	Offset   int
}

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	// GetByID devuelve (nil, nil) si no existe. Puebla CreatedBy.
	GetByID(id string) (*entity.Categoria, error)
	GetByNombre(nombre string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	Delete(id string) error
	// List devuelve la ventana solicitada y el total de documentos que
	// coinciden con el filtro (ignorando limit/offset).
	List(filtro CategoriaFiltro) ([]*entity.Categoria, int64, error)
}
