package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lorebel/inventario-api/internal/domain/repository"
	"github.com/lorebel/inventario-api/internal/listado"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductoFiltroSQL_Vacio(t *testing.T) {
	f := productoFiltroSQL(repository.ProductoFiltro{})
	assert.Empty(t, f.where())
	assert.Empty(t, f.args)
}

func TestProductoFiltroSQL_RangoInclusivo(t *testing.T) {
	f := productoFiltroSQL(repository.ProductoFiltro{
		MinPrecio: dec("10"),
		MaxPrecio: dec("20"),
	})
	assert.Equal(t, " WHERE p.precio >= $1 AND p.precio <= $2", f.where())
	assert.Len(t, f.args, 2)
}

func TestProductoFiltroSQL_SoloMin(t *testing.T) {
	// El límite ausente se omite del filtro, no se defaultea a 0/∞.
	f := productoFiltroSQL(repository.ProductoFiltro{MinPrecio: dec("5.50")})
	assert.Equal(t, " WHERE p.precio >= $1", f.where())
	assert.Len(t, f.args, 1)
}

func TestProductoFiltroSQL_Completo(t *testing.T) {
	f := productoFiltroSQL(repository.ProductoFiltro{
		CategoriaID: "7b6e6c1e-0000-0000-0000-000000000001",
		MinPrecio:   dec("10"),
		MaxPrecio:   dec("20"),
		Busqueda:    "taza",
	})
	assert.Equal(t,
		" WHERE p.categoria_id = $1 AND p.precio >= $2 AND p.precio <= $3 AND (p.nombre ~* $4 OR p.descripcion ~* $4)",
		f.where())
	assert.Len(t, f.args, 4)
}

func TestProductoFiltroSQL_BusquedaEscapada(t *testing.T) {
	f := productoFiltroSQL(repository.ProductoFiltro{Busqueda: "a.b*c"})
	assert.Equal(t, " WHERE (p.nombre ~* $1 OR p.descripcion ~* $1)", f.where())
	// El argumento viaja escapado: el término es substring literal, no patrón.
	assert.Equal(t, listado.EscaparBusqueda("a.b*c"), f.args[0])
	assert.NotEqual(t, "a.b*c", f.args[0])
}

func TestCategoriaFiltroSQL_ActivoTriEstado(t *testing.T) {
	// Ausente: sin condición sobre activo.
	f := categoriaFiltroSQL(repository.CategoriaFiltro{})
	assert.Empty(t, f.where())

	// Presente en false: condición explícita (distinto de ausente).
	falso := false
	f = categoriaFiltroSQL(repository.CategoriaFiltro{Activo: &falso})
	assert.Equal(t, " WHERE c.activo = $1", f.where())
	assert.Equal(t, false, f.args[0])

	verdadero := true
	f = categoriaFiltroSQL(repository.CategoriaFiltro{Busqueda: "hogar", Activo: &verdadero})
	assert.Equal(t, " WHERE (c.nombre ~* $1 OR c.descripcion ~* $1) AND c.activo = $2", f.where())
}

func TestOrdenWhitelists(t *testing.T) {
	assert.Equal(t, "p.created_at DESC", listado.Orden("-createdAt", productoColumnas, productoOrdenDefault))
	assert.Equal(t, "p.precio ASC", listado.Orden("precio", productoColumnas, productoOrdenDefault))
	// Una expresión hostil no alcanza el ORDER BY.
	assert.Equal(t, productoOrdenDefault, listado.Orden("precio;DROP TABLE productos", productoColumnas, productoOrdenDefault))
	assert.Equal(t, categoriaOrdenDefault, listado.Orden("", categoriaColumnas, categoriaOrdenDefault))
}
