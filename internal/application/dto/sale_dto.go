package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/ventas.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"dive"`
	PaymentMethod string            `json:"metodoPago"`
	Customer      string            `json:"cliente,omitempty" validate:"omitempty,max=200"`
	Notes         string            `json:"notas,omitempty" validate:"omitempty,max=500"`
}

// SaleItemRequest línea del carrito.
type SaleItemRequest struct {
	ProductID string `json:"productoId"`
	Quantity  int    `json:"cantidad"`
}

// SaleListQuery filtros de GET /api/ventas (fechas YYYY-MM-DD, inclusivas).
type SaleListQuery struct {
	From   string `query:"desde"`
	To     string `query:"hasta"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// UserSummary perfil público del usuario que registró la venta.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

// SaleItemResponse línea de venta con los valores congelados.
type SaleItemResponse struct {
	ProductID   string          `json:"productoId"`
	ProductName string          `json:"nombreProducto"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"metodoPago"`
	User          *UserSummary       `json:"usuario,omitempty"`
	Customer      string             `json:"cliente,omitempty"`
	Notes         string             `json:"notas,omitempty"`
	CreatedAt     time.Time          `json:"fecha"`
}

// SaleListResponse página de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
