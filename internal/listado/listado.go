// Package listado concentra la lógica compartida por los listados de la API:
// coacción permisiva de parámetros del cliente, escape del término de
// búsqueda, resolución de la expresión de orden y la aritmética de paginación.
//
// Los parámetros llegan como strings controlados por el cliente; todo lo que
// sale de este paquete es canónico y seguro de interpolar en una consulta
// parametrizada.
package listado

import (
	"regexp"
	"strconv"
	"strings"
)

// Entero coacciona un query param a entero. Un valor no numérico o cero cae
// al valor por defecto; valores negativos se conservan tal cual (comportamiento
// heredado: este nivel no clampa, no es una red de seguridad).
func Entero(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return def
	}
	return n
}

// Skip calcula el offset de la ventana: (page-1)*limit.
func Skip(page, limit int) int {
	return (page - 1) * limit
}

// EscaparBusqueda escapa todo metacarácter de regex del término
// (`. * + ? ^ $ { } ( ) | [ ] \`) para que se interprete como substring
// literal y nunca como patrón. Evita inyección de comportamiento regex y
// patrones de denegación de servicio.
func EscaparBusqueda(term string) string {
	return regexp.QuoteMeta(term)
}

// Orden resuelve una expresión de orden estilo mongo ("-createdAt",
// "precio -nombre") contra una whitelist de columnas. Claves desconocidas se
// ignoran; si ninguna resuelve, se usa def. El resultado es seguro de
// concatenar en un ORDER BY.
func Orden(expr string, columnas map[string]string, def string) string {
	var partes []string
	for _, clave := range strings.Fields(expr) {
		dir := "ASC"
		if strings.HasPrefix(clave, "-") {
			dir = "DESC"
			clave = clave[1:]
		}
		col, ok := columnas[clave]
		if !ok {
			continue
		}
		partes = append(partes, col+" "+dir)
	}
	if len(partes) == 0 {
		return def
	}
	return strings.Join(partes, ", ")
}

// Pagina es el descriptor de paginación que acompaña cada listado.
type Pagina struct {
	Current    int   `json:"current"`
	PerPage    int   `json:"perPage"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagina construye el descriptor para una página dada y el total de ítems
// que coinciden con el filtro. TotalPages es ceil(totalItems/limit) y vale 0
// cuando no hay ítems; una página más allá del final produce un descriptor
// válido (nunca un error), con la ventana vacía a cargo del llamador.
func NewPagina(page, limit int, totalItems int64) Pagina {
	var totalPages int
	if totalItems > 0 && limit != 0 {
		totalPages = int((totalItems + int64(limit) - 1) / int64(limit))
	}
	return Pagina{
		Current:    page,
		PerPage:    limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(limit) < totalItems,
		HasPrev:    Skip(page, limit) > 0,
	}
}
