package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/domain"
	"github.com/lorebel/inventario-api/internal/domain/entity"
	"github.com/lorebel/inventario-api/internal/domain/repository"
	"github.com/lorebel/inventario-api/internal/listado"
)

// ProductoUseCase casos de uso CRUD para productos.
type ProductoUseCase struct {
	repo       repository.ProductoRepository
	categorias repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categorias repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categorias: categorias}
}

// Crear crea un producto con el usuario autenticado como creador.
// La categoría referenciada debe existir; imagen en blanco se omite.
func (uc *ProductoUseCase) Crear(createdBy string, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoria, err := uc.categorias.GetByID(in.Categoria)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrCategoriaNoExiste
	}

	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      *in.Precio,
		Stock:       in.Stock,
		CategoriaID: categoria.ID,
		Imagen:      imagenONil(in.Imagen),
		Activo:      true,
		CreatedByID: createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	// Relectura para devolver categoría y creador poblados.
	creado, err := uc.repo.GetByID(producto.ID)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(creado), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Listar lista productos con filtros, búsqueda y paginación. Los params
// crudos del cliente se coaccionan acá: page/limit no numéricos caen a los
// defaults, los límites de precio no parseables se omiten del filtro.
func (uc *ProductoUseCase) Listar(params dto.ListarProductosParams) ([]dto.ProductoResponse, listado.Pagina, error) {
	page := listado.Entero(params.Page, 1)
	limit := listado.Entero(params.Limit, 10)

	filtro := repository.ProductoFiltro{
		CategoriaID: params.Categoria,
		Busqueda:    params.Search,
		Orden:       params.Sort,
		Limit:       limit,
		Offset:      listado.Skip(page, limit),
	}
	if params.MinPrecio != "" {
		if d, err := decimal.NewFromString(params.MinPrecio); err == nil {
			filtro.MinPrecio = &d
		}
	}
	if params.MaxPrecio != "" {
		if d, err := decimal.NewFromString(params.MaxPrecio); err == nil {
			filtro.MaxPrecio = &d
		}
	}

	productos, total, err := uc.repo.List(filtro)
	if err != nil {
		return nil, listado.Pagina{}, err
	}

	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductoResponse(p))
	}
	return items, listado.NewPagina(page, limit, total), nil
}

// Actualizar aplica una actualización parcial: solo los campos enviados se
// mutan. Cambiar la categoría re-verifica que exista; imagen en blanco limpia
// el campo a null.
func (uc *ProductoUseCase) Actualizar(id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}

	if in.Categoria != nil {
		categoria, err := uc.categorias.GetByID(*in.Categoria)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrCategoriaNoExiste
		}
		producto.CategoriaID = categoria.ID
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		producto.Precio = *in.Precio
	}
	if in.Stock != nil {
		producto.Stock = *in.Stock
	}
	if in.Imagen != nil {
		producto.Imagen = imagenONil(*in.Imagen)
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	producto.UpdatedAt = time.Now()

	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	actualizado, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(actualizado), nil
}

// Eliminar elimina un producto por ID, sin condiciones.
func (uc *ProductoUseCase) Eliminar(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(producto.ID)
}

// imagenONil devuelve nil para URLs en blanco: el campo se omite, no se
// guarda cadena vacía.
func imagenONil(imagen string) *string {
	imagen = strings.TrimSpace(imagen)
	if imagen == "" {
		return nil
	}
	return &imagen
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		Imagen:      p.Imagen,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Categoria != nil {
		out.Categoria = dto.CategoriaRefResponse{
			ID:     p.Categoria.ID,
			Nombre: p.Categoria.Nombre,
			Icono:  p.Categoria.Icono,
		}
	}
	if p.CreatedBy != nil {
		out.CreatedBy = dto.CreatedByResponse{
			ID:       p.CreatedBy.ID,
			Username: p.CreatedBy.Username,
			Email:    p.CreatedBy.Email,
		}
	}
	return out
}
