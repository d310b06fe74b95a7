package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorebel/inventario-api/internal/application/dto"
	"github.com/lorebel/inventario-api/internal/application/usecase"
	"github.com/lorebel/inventario-api/internal/domain"
	"github.com/lorebel/inventario-api/internal/domain/entity"
)

const testCreadorID = "00000000-0000-0000-0000-0000000000aa"

func newCategoriaUC() (*usecase.CategoriaUseCase, *memCategoriaRepo, *memProductoRepo) {
	categorias := &memCategoriaRepo{}
	productos := &memProductoRepo{}
	return usecase.NewCategoriaUseCase(categorias, productos), categorias, productos
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoriaCrear_AsignaDefaults(t *testing.T) {
	uc, repo, _ := newCategoriaUC()

	resp, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{
		Nombre:      "Tejidos",
		Descripcion: "Bufandas y gorros tejidos a mano",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.IconoPorDefecto, resp.Icono, "sin icono se usa el default")
	assert.True(t, resp.Activo, "las categorías nacen activas")
	require.Len(t, repo.categorias, 1)
	assert.Equal(t, testCreadorID, repo.categorias[0].CreatedByID)
}

func TestCategoriaCrear_RespetaIconoEnviado(t *testing.T) {
	uc, _, _ := newCategoriaUC()

	resp, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{
		Nombre:      "Velas",
		Descripcion: "Velas aromáticas artesanales",
		Icono:       "🕯️",
	})
	require.NoError(t, err)
	assert.Equal(t, "🕯️", resp.Icono)
}

func TestCategoriaCrear_NombreDuplicado(t *testing.T) {
	uc, repo, _ := newCategoriaUC()
	_, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Tejidos", Descripcion: "Primera"})
	require.NoError(t, err)

	_, err = uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Tejidos", Descripcion: "Segunda"})
	assert.ErrorIs(t, err, domain.ErrNombreDuplicado)
	assert.Len(t, repo.categorias, 1, "el duplicado no debe persistirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoriaListar_CoaccionaParams(t *testing.T) {
	uc, repo, _ := newCategoriaUC()
	_, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Tejidos", Descripcion: "desc"})
	require.NoError(t, err)

	_, pagina, err := uc.Listar(dto.ListarCategoriasParams{Page: "abc", Limit: ""})
	require.NoError(t, err)

	assert.Equal(t, 1, pagina.Current, "page no numérico cae al default")
	assert.Equal(t, 10, pagina.PerPage)
	assert.Equal(t, 0, repo.lastFiltro.Offset)
	assert.Nil(t, repo.lastFiltro.Activo, "activo ausente no filtra")
}

func TestCategoriaListar_ActivoTriEstado(t *testing.T) {
	uc, repo, _ := newCategoriaUC()

	_, _, err := uc.Listar(dto.ListarCategoriasParams{Activo: ptr("true")})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFiltro.Activo)
	assert.True(t, *repo.lastFiltro.Activo)

	// Cualquier valor distinto de "true" literal filtra por inactivas.
	_, _, err = uc.Listar(dto.ListarCategoriasParams{Activo: ptr("false")})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFiltro.Activo)
	assert.False(t, *repo.lastFiltro.Activo)

	_, _, err = uc.Listar(dto.ListarCategoriasParams{Activo: ptr("cualquiera")})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFiltro.Activo)
	assert.False(t, *repo.lastFiltro.Activo)
}

func TestCategoriaListar_PropagaBusquedaYOrden(t *testing.T) {
	uc, repo, _ := newCategoriaUC()

	_, _, err := uc.Listar(dto.ListarCategoriasParams{
		Search: "tej",
		Sort:   "-createdAt",
		Page:   "2",
		Limit:  "5",
	})
	require.NoError(t, err)
	assert.Equal(t, "tej", repo.lastFiltro.Busqueda)
	assert.Equal(t, "-createdAt", repo.lastFiltro.Orden)
	assert.Equal(t, 5, repo.lastFiltro.Limit)
	assert.Equal(t, 5, repo.lastFiltro.Offset)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoriaActualizar_Parcial(t *testing.T) {
	uc, _, _ := newCategoriaUC()
	creada, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{
		Nombre:      "Tejidos",
		Descripcion: "Original",
		Icono:       "🧶",
	})
	require.NoError(t, err)

	resp, err := uc.Actualizar(creada.ID, dto.ActualizarCategoriaRequest{
		Descripcion: ptr("Actualizada"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Actualizada", resp.Descripcion)
	assert.Equal(t, "Tejidos", resp.Nombre, "los campos no enviados no se tocan")
	assert.Equal(t, "🧶", resp.Icono)
}

func TestCategoriaActualizar_RenombreDuplicado(t *testing.T) {
	uc, _, _ := newCategoriaUC()
	_, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Tejidos", Descripcion: "a"})
	require.NoError(t, err)
	velas, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Velas", Descripcion: "b"})
	require.NoError(t, err)

	_, err = uc.Actualizar(velas.ID, dto.ActualizarCategoriaRequest{Nombre: ptr("Tejidos")})
	assert.ErrorIs(t, err, domain.ErrNombreDuplicado)
}

// Reenviar el mismo nombre no debe tropezar con la verificación de unicidad.
func TestCategoriaActualizar_MismoNombre(t *testing.T) {
	uc, _, _ := newCategoriaUC()
	creada, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Tejidos", Descripcion: "a"})
	require.NoError(t, err)

	resp, err := uc.Actualizar(creada.ID, dto.ActualizarCategoriaRequest{Nombre: ptr("Tejidos")})
	require.NoError(t, err)
	assert.Equal(t, "Tejidos", resp.Nombre)
}

func TestCategoriaActualizar_Inexistente(t *testing.T) {
	uc, _, _ := newCategoriaUC()
	resp, err := uc.Actualizar("00000000-0000-0000-0000-0000000000ff", dto.ActualizarCategoriaRequest{
		Nombre: ptr("Nada"),
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoriaEliminar_SinProductos(t *testing.T) {
	uc, repo, _ := newCategoriaUC()
	creada, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Tejidos", Descripcion: "a"})
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(creada.ID))
	assert.Empty(t, repo.categorias)
}

func TestCategoriaEliminar_ConProductosAsociados(t *testing.T) {
	categorias := &memCategoriaRepo{}
	productos := &memProductoRepo{}
	uc := usecase.NewCategoriaUseCase(categorias, productos)

	creada, err := uc.Crear(testCreadorID, dto.CrearCategoriaRequest{Nombre: "Tejidos", Descripcion: "a"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, productos.Create(&entity.Producto{
			ID:          fmt.Sprintf("producto-%d", i),
			CategoriaID: creada.ID,
		}))
	}

	err = uc.Eliminar(creada.ID)
	var enUso *domain.CategoriaEnUsoError
	require.ErrorAs(t, err, &enUso)
	assert.Equal(t, int64(3), enUso.Productos)
	assert.Contains(t, err.Error(), "tiene 3 producto(s) asociado(s)")
	assert.Len(t, categorias.categorias, 1, "la categoría en uso no se elimina")
}

func TestCategoriaEliminar_Inexistente(t *testing.T) {
	uc, _, _ := newCategoriaUC()
	err := uc.Eliminar("00000000-0000-0000-0000-0000000000ff")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
