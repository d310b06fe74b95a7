package dto

import "time"

// CrearCategoriaRequest entrada para crear una categoría.
type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=50"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=200"`
	Icono       string `json:"icono"`
}

// ActualizarCategoriaRequest actualización parcial: solo los campos enviados
// (punteros no nulos) se mutan.
type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=50"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=200"`
	Icono       *string `json:"icono"`
	Activo      *bool   `json:"activo"`
}

// ListarCategoriasParams query params crudos del listado, tal como llegan del
// cliente. Activo en nil significa "parámetro ausente" (sin filtro), distinto
// de presente con cualquier valor.
type ListarCategoriasParams struct {
	Search string
	Activo *string
	Sort   string
	Page   string
	Limit  string
}

// CategoriaResponse salida de una categoría con el creador poblado.
type CategoriaResponse struct {
	ID          string            `json:"id"`
	Nombre      string            `json:"nombre"`
	Descripcion string            `json:"descripcion,omitempty"`
	Icono       string            `json:"icono"`
	Activo      bool              `json:"activo"`
	CreatedBy   CreatedByResponse `json:"createdBy"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CategoriaRefResponse proyección de la categoría en productos poblados.
type CategoriaRefResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Icono  string `json:"icono"`
}
