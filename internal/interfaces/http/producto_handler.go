package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/application/usecase"
	"github.com/lorebel/inventario-api/internal/domain"
)

// ProductoHandler maneja las peticiones HTTP para productos (protegido).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List lista productos con filtros, búsqueda, orden y paginación.
// GET /api/productos?categoria&minPrecio&maxPrecio&search&sort&page&limit
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	params := dto.ListarProductosParams{
		Categoria: c.Query("categoria"),
		MinPrecio: c.Query("minPrecio"),
		MaxPrecio: c.Query("maxPrecio"),
		Search:    c.Query("search"),
		Sort:      c.Query("sort"),
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
	}
	items, pagina, err := h.uc.Listar(params)
	if err != nil {
		return fmt.Errorf("listar productos: %w", err)
	}
	return c.JSON(dto.RespuestaLista{
		Success:    true,
		Count:      len(items),
		Pagination: pagina,
		Data:       items,
	})
}

// GetByID obtiene un producto por ID.
// GET /api/productos/:id
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fmt.Errorf("obtener producto: %w", err)
	}
	if out == nil {
		return productoNoEncontrado(c)
	}
	return c.JSON(dto.Respuesta{Success: true, Data: out})
}

// Create crea un producto asociado al usuario autenticado.
// POST /api/productos
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if !bindAndValidate(c, &in) {
		return nil
	}

	out, err := h.uc.Crear(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrCategoriaNoExiste) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
				Success: false,
				Message: "La categoría seleccionada no existe",
			})
		}
		return fmt.Errorf("crear producto: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Respuesta{
		Success: true,
		Message: "Producto creado exitosamente",
		Data:    out,
	})
}

// Update actualiza parcialmente un producto: solo los campos enviados.
// PUT /api/productos/:id
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarProductoRequest
	if !bindAndValidate(c, &in) {
		return nil
	}

	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrCategoriaNoExiste) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
				Success: false,
				Message: "La categoría seleccionada no existe",
			})
		}
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if out == nil {
		return productoNoEncontrado(c)
	}
	return c.JSON(dto.Respuesta{
		Success: true,
		Message: "Producto actualizado exitosamente",
		Data:    out,
	})
}

// Delete elimina un producto, sin condiciones.
// DELETE /api/productos/:id
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Eliminar(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return productoNoEncontrado(c)
		}
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return c.JSON(dto.Respuesta{
		Success: true,
		Message: "Producto eliminado exitosamente",
		Data:    dto.IDResponse{ID: id},
	})
}

func productoNoEncontrado(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.RespuestaError{
		Success: false,
		Message: "Producto no encontrado",
	})
}
