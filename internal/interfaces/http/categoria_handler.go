package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/application/usecase"
	"github.com/lorebel/inventario-api/internal/domain"
)

// CategoriaHandler maneja las peticiones HTTP para categorías (protegido).
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// List lista categorías con búsqueda, filtro de activo y paginación.
// GET /api/categorias?search&activo&sort&page&limit
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	params := dto.ListarCategoriasParams{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Page:   c.Query("page"),
		Limit:  c.Query("limit"),
	}
	// Presencia del parámetro, no su valor: "?activo=" filtra por false,
	// mientras que sin el parámetro no se filtra.
	if c.Context().QueryArgs().Has("activo") {
		activo := c.Query("activo")
		params.Activo = &activo
	}

	items, pagina, err := h.uc.Listar(params)
	if err != nil {
		return fmt.Errorf("listar categorias: %w", err)
	}
	return c.JSON(dto.RespuestaLista{
		Success:    true,
		Count:      len(items),
		Pagination: pagina,
		Data:       items,
	})
}

// GetByID obtiene una categoría por ID.
// GET /api/categorias/:id
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fmt.Errorf("obtener categoria: %w", err)
	}
	if out == nil {
		return categoriaNoEncontrada(c)
	}
	return c.JSON(dto.Respuesta{Success: true, Data: out})
}

// Create crea una categoría asociada al usuario autenticado.
// POST /api/categorias
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if !bindAndValidate(c, &in) {
		return nil
	}

	out, err := h.uc.Crear(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNombreDuplicado) {
			return nombreDuplicado(c)
		}
		return fmt.Errorf("crear categoria: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Respuesta{
		Success: true,
		Message: "Categoría creada exitosamente",
		Data:    out,
	})
}

// Update actualiza parcialmente una categoría: solo los campos enviados.
// Renombrar re-verifica la unicidad del nombre.
// PUT /api/categorias/:id
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &in) {
		return nil
	}

	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNombreDuplicado) {
			return nombreDuplicado(c)
		}
		return fmt.Errorf("actualizar categoria: %w", err)
	}
	if out == nil {
		return categoriaNoEncontrada(c)
	}
	return c.JSON(dto.Respuesta{
		Success: true,
		Message: "Categoría actualizada exitosamente",
		Data:    out,
	})
}

// Delete elimina una categoría si no tiene productos asociados; si los hay,
// responde 400 con el conteo en el mensaje.
// DELETE /api/categorias/:id
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Eliminar(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return categoriaNoEncontrada(c)
		}
		var enUso *domain.CategoriaEnUsoError
		if errors.As(err, &enUso) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
				Success: false,
				Message: enUso.Error(),
			})
		}
		return fmt.Errorf("eliminar categoria: %w", err)
	}
	return c.JSON(dto.Respuesta{
		Success: true,
		Message: "Categoría eliminada exitosamente",
		Data:    dto.IDResponse{ID: id},
	})
}

func categoriaNoEncontrada(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.RespuestaError{
		Success: false,
		Message: "Categoría no encontrada",
	})
}

func nombreDuplicado(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
		Success: false,
		Message: "Ya existe una categoría con ese nombre",
	})
}
