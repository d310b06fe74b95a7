package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/domain"
	"github.com/lorebel/inventario-api/internal/domain/entity"
	"github.com/lorebel/inventario-api/internal/domain/repository"
	"github.com/lorebel/inventario-api/internal/listado"
)

// CategoriaUseCase casos de uso CRUD para categorías. Necesita el repo de
// productos para la guardia referencial del delete.
type CategoriaUseCase struct {
	repo      repository.CategoriaRepository
	productos repository.ProductoRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, productos repository.ProductoRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, productos: productos}
}

// Crear crea una categoría con el usuario autenticado como creador.
// El nombre debe ser único: devuelve ErrNombreDuplicado si ya existe.
func (uc *CategoriaUseCase) Crear(createdBy string, in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	existing, err := uc.repo.GetByNombre(in.Nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrNombreDuplicado
	}

	icono := in.Icono
	if icono == "" {
		icono = entity.IconoPorDefecto
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Icono:       icono,
		Activo:      true,
		CreatedByID: createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	// Relectura para devolver el creador poblado.
	creada, err := uc.repo.GetByID(categoria.ID)
	if err != nil {
		return nil, err
	}
	return toCategoriaResponse(creada), nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Listar lista categorías con búsqueda, filtro tri-estado de activo y
// paginación. Los params crudos del cliente se coaccionan acá.
func (uc *CategoriaUseCase) Listar(params dto.ListarCategoriasParams) ([]dto.CategoriaResponse, listado.Pagina, error) {
	page := listado.Entero(params.Page, 1)
	limit := listado.Entero(params.Limit, 10)

	filtro := repository.CategoriaFiltro{
		Busqueda: params.Search,
		Orden:    params.Sort,
		Limit:    limit,
		Offset:   listado.Skip(page, limit),
	}
	// Tri-estado: presente => "true" literal es true, cualquier otro valor es
	// false; ausente => sin filtro (distinto de false).
	if params.Activo != nil {
		activo := *params.Activo == "true"
		filtro.Activo = &activo
	}

	categorias, total, err := uc.repo.List(filtro)
	if err != nil {
		return nil, listado.Pagina{}, err
	}

	items := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, listado.NewPagina(page, limit, total), nil
}

// Actualizar aplica una actualización parcial: solo los campos enviados se
// mutan. Renombrar re-verifica la unicidad del nombre.
func (uc *CategoriaUseCase) Actualizar(id string, in dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}

	if in.Nombre != nil && *in.Nombre != categoria.Nombre {
		existing, err := uc.repo.GetByNombre(*in.Nombre)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrNombreDuplicado
		}
		categoria.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		categoria.Descripcion = *in.Descripcion
	}
	if in.Icono != nil {
		categoria.Icono = *in.Icono
	}
	if in.Activo != nil {
		categoria.Activo = *in.Activo
	}
	categoria.UpdatedAt = time.Now()

	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	actualizada, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCategoriaResponse(actualizada), nil
}

// Eliminar elimina una categoría si ningún producto la referencia; si hay
// productos asociados devuelve CategoriaEnUsoError con el conteo.
// La verificación y el delete no son atómicos entre sí (riesgo heredado).
func (uc *CategoriaUseCase) Eliminar(id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}

	asociados, err := uc.productos.CountByCategoria(categoria.ID)
	if err != nil {
		return err
	}
	if asociados > 0 {
		return &domain.CategoriaEnUsoError{Productos: asociados}
	}
	return uc.repo.Delete(categoria.ID)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	out := &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Icono:       c.Icono,
		Activo:      c.Activo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.CreatedBy != nil {
		out.CreatedBy = dto.CreatedByResponse{
			ID:       c.CreatedBy.ID,
			Username: c.CreatedBy.Username,
			Email:    c.CreatedBy.Email,
		}
	}
	return out
}
