package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lorebel/inventario-api/internal/application/auth"
	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/application/usecase"
	"github.com/lorebel/inventario-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductoUC  *usecase.ProductoUseCase
	CategoriaUC *usecase.CategoriaUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
}

// Router registra las rutas de la API. Todo recurso va detrás del middleware
// de auth; solo register y login son públicos. El catch-all del final produce
// el 404 JSON de rutas no definidas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	proteger := AuthMiddleware(deps.JWTSecret, deps.UserRepo)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", proteger, authHandler.Profile)

	// Productos (protegido)
	productos := api.Group("/productos", proteger)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Categorías (protegido)
	categorias := api.Group("/categorias", proteger)
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Rutas no definidas
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.RespuestaError{
			Success: false,
			Message: "Ruta no encontrada",
		})
	})
}
