package usecase_test

import (
	"github.com/lorebel/inventario-api/internal/domain/entity"
	"github.com/lorebel/inventario-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Capturan el último
// filtro recibido para poder afirmar sobre la coacción de query params.

type memCategoriaRepo struct {
	categorias []*entity.Categoria
	lastFiltro repository.CategoriaFiltro
}

func (r *memCategoriaRepo) Create(c *entity.Categoria) error {
	copia := *c
	r.categorias = append(r.categorias, &copia)
	return nil
}

func (r *memCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	for _, c := range r.categorias {
		if c.ID == id {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memCategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nombre == nombre {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memCategoriaRepo) Update(c *entity.Categoria) error {
	for i, existente := range r.categorias {
		if existente.ID == c.ID {
			copia := *c
			r.categorias[i] = &copia
			return nil
		}
	}
	return nil
}

func (r *memCategoriaRepo) Delete(id string) error {
	for i, c := range r.categorias {
		if c.ID == id {
			r.categorias = append(r.categorias[:i], r.categorias[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memCategoriaRepo) List(filtro repository.CategoriaFiltro) ([]*entity.Categoria, int64, error) {
	r.lastFiltro = filtro
	out := make([]*entity.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		copia := *c
		out = append(out, &copia)
	}
	return out, int64(len(r.categorias)), nil
}

type memProductoRepo struct {
	productos  []*entity.Producto
	lastFiltro repository.ProductoFiltro
}

func (r *memProductoRepo) Create(p *entity.Producto) error {
	copia := *p
	r.productos = append(r.productos, &copia)
	return nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	for _, p := range r.productos {
		if p.ID == id {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memProductoRepo) Update(p *entity.Producto) error {
	for i, existente := range r.productos {
		if existente.ID == p.ID {
			copia := *p
			r.productos[i] = &copia
			return nil
		}
	}
	return nil
}

func (r *memProductoRepo) Delete(id string) error {
	for i, p := range r.productos {
		if p.ID == id {
			r.productos = append(r.productos[:i], r.productos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memProductoRepo) List(filtro repository.ProductoFiltro) ([]*entity.Producto, int64, error) {
	r.lastFiltro = filtro
	out := make([]*entity.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		copia := *p
		out = append(out, &copia)
	}
	return out, int64(len(r.productos)), nil
}

func (r *memProductoRepo) CountByCategoria(categoriaID string) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.CategoriaID == categoriaID {
			n++
		}
	}
	return n, nil
}

func ptr[T any](v T) *T { return &v }
