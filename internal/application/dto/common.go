package dto

import "github.com/lorebel/inventario-api/internal/listado"

// Respuesta envoltorio estándar de la API: {success, message?, data?}.
type Respuesta struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// RespuestaLista envoltorio de listados paginados.
type RespuestaLista struct {
	Success    bool           `json:"success"`
	Count      int            `json:"count"`
	Pagination listado.Pagina `json:"pagination"`
	Data       any            `json:"data"`
}

// RespuestaError cuerpo de error. Error solo se llena en modo desarrollo.
type RespuestaError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// IDResponse respuesta de un delete exitoso.
type IDResponse struct {
	ID string `json:"id"`
}
