package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/productos.
type CreateProductRequest struct {
	Name        string          `json:"nombre" validate:"required,max=200"`
	Description string          `json:"descripcion" validate:"omitempty,max=1000"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria" validate:"required,max=100"`
	Available   *bool           `json:"disponible,omitempty"`
	ImageURL    string          `json:"imagenUrl" validate:"omitempty,url"`
}

// UpdateProductRequest body para PUT /api/productos/:id.
type UpdateProductRequest struct {
	Name        string          `json:"nombre" validate:"required,max=200"`
	Description string          `json:"descripcion" validate:"omitempty,max=1000"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria" validate:"required,max=100"`
	Available   bool            `json:"disponible"`
	ImageURL    string          `json:"imagenUrl" validate:"omitempty,url"`
}

// AvailabilityRequest body para PATCH /api/productos/:id/disponibilidad.
type AvailabilityRequest struct {
	Available *bool `json:"disponible" validate:"required"`
}

// ProductListQuery filtros de GET /api/productos.
type ProductListQuery struct {
	Category      string `query:"categoria"`
	AvailableOnly bool   `query:"disponible"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria"`
	Available   bool            `json:"disponible"`
	ImageURL    string          `json:"imagenUrl"`
	CreatedAt   time.Time       `json:"creadoEn"`
	UpdatedAt   time.Time       `json:"actualizadoEn"`
}
