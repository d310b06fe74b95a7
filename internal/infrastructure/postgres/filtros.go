package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lorebel/inventario-api/internal/domain/repository"
	"github.com/lorebel/inventario-api/internal/listado"
)

// filtroSQL acumula condiciones WHERE parametrizadas de forma incremental.
// Cada valor entra como argumento posicional: nada del cliente se interpola
// en el texto de la consulta.
type filtroSQL struct {
	conds []string
	args  []any
}

// arg registra un argumento y devuelve su placeholder ($1, $2, ...).
func (f *filtroSQL) arg(v any) string {
	f.args = append(f.args, v)
	return "$" + strconv.Itoa(len(f.args))
}

// cond agrega una condición con un único argumento, ej. cond("p.precio >= %s", min).
func (f *filtroSQL) cond(format string, v any) {
	f.conds = append(f.conds, fmt.Sprintf(format, f.arg(v)))
}

// busqueda agrega la disyunción de substring case-insensitive sobre las
// columnas de texto. El término se escapa antes para que los metacaracteres
// de regex se traten como literales (~* con el término escapado equivale a
// "contiene, ignorando mayúsculas").
func (f *filtroSQL) busqueda(term string, columnas ...string) {
	ph := f.arg(listado.EscaparBusqueda(term))
	or := make([]string, len(columnas))
	for i, col := range columnas {
		or[i] = col + " ~* " + ph
	}
	f.conds = append(f.conds, "("+strings.Join(or, " OR ")+")")
}

// where devuelve la cláusula WHERE completa, o cadena vacía sin condiciones.
func (f *filtroSQL) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// Whitelists de orden por recurso: solo estas claves del cliente llegan al
// ORDER BY, ya resueltas a nombre de columna.
var (
	productoColumnas = map[string]string{
		"createdAt": "p.created_at",
		"updatedAt": "p.updated_at",
		"nombre":    "p.nombre",
		"precio":    "p.precio",
		"stock":     "p.stock",
	}
	categoriaColumnas = map[string]string{
		"createdAt": "c.created_at",
		"updatedAt": "c.updated_at",
		"nombre":    "c.nombre",
	}
)

const (
	productoOrdenDefault  = "p.created_at DESC" // -createdAt
	categoriaOrdenDefault = "c.nombre ASC"
)

// productoFiltroSQL traduce el filtro canónico de productos a condiciones SQL.
func productoFiltroSQL(fl repository.ProductoFiltro) *filtroSQL {
	f := &filtroSQL{}
	if fl.CategoriaID != "" {
		f.cond("p.categoria_id = %s", fl.CategoriaID)
	}
	if fl.MinPrecio != nil {
		f.cond("p.precio >= %s", *fl.MinPrecio)
	}
	if fl.MaxPrecio != nil {
		f.cond("p.precio <= %s", *fl.MaxPrecio)
	}
	if fl.Busqueda != "" {
		f.busqueda(fl.Busqueda, "p.nombre", "p.descripcion")
	}
	return f
}

// categoriaFiltroSQL traduce el filtro canónico de categorías a condiciones SQL.
func categoriaFiltroSQL(fl repository.CategoriaFiltro) *filtroSQL {
	f := &filtroSQL{}
	if fl.Busqueda != "" {
		f.busqueda(fl.Busqueda, "c.nombre", "c.descripcion")
	}
	if fl.Activo != nil {
		f.cond("c.activo = %s", *fl.Activo)
	}
	return f
}
