package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para POST /api/inventario.
// Cantidad inicial se registra como movimiento de entrada.
type CreateInventoryItemRequest struct {
	Name            string          `json:"nombre" validate:"required,max=200"`
	Description     string          `json:"descripcion" validate:"omitempty,max=1000"`
	Quantity        decimal.Decimal `json:"cantidad"`
	Unit            string          `json:"unidad" validate:"required,oneof=unidades kg lb litros gramos ml"`
	MinimumQuantity decimal.Decimal `json:"cantidadMinima"`
	UnitCost        decimal.Decimal `json:"costoUnitario"`
	Category        string          `json:"categoria" validate:"required,oneof=ingrediente suministro empaque otro"`
	Supplier        string          `json:"proveedor" validate:"omitempty,max=200"`
}

// UpdateInventoryItemRequest body para PUT /api/inventario/:id. La cantidad no se edita aquí.
type UpdateInventoryItemRequest struct {
	Name            string          `json:"nombre" validate:"required,max=200"`
	Description     string          `json:"descripcion" validate:"omitempty,max=1000"`
	Unit            string          `json:"unidad" validate:"required,oneof=unidades kg lb litros gramos ml"`
	MinimumQuantity decimal.Decimal `json:"cantidadMinima"`
	UnitCost        decimal.Decimal `json:"costoUnitario"`
	Category        string          `json:"categoria" validate:"required,oneof=ingrediente suministro empaque otro"`
	Supplier        string          `json:"proveedor" validate:"omitempty,max=200"`
}

// EntradaRequest body para POST /api/inventario/:id/entrada.
type EntradaRequest struct {
	Quantity  decimal.Decimal  `json:"cantidad"`
	TotalCost *decimal.Decimal `json:"costoTotal,omitempty"`
	Reason    string           `json:"motivo" validate:"required,max=500"`
}

// MovementRequest body para salida y ajuste (en ajuste cantidad lleva signo).
type MovementRequest struct {
	Quantity decimal.Decimal `json:"cantidad"`
	Reason   string          `json:"motivo" validate:"required,max=500"`
}

// InventoryListQuery filtros de GET /api/inventario.
type InventoryListQuery struct {
	LowStock bool   `query:"stockBajo"`
	Category string `query:"categoria" validate:"omitempty,oneof=ingrediente suministro empaque otro"`
	Status   string `query:"estado" validate:"omitempty,oneof=bajo reorden ok"`
	Search   string `query:"buscar" validate:"omitempty,max=100"`
}

// InventoryItemResponse insumo con su estado de stock calculado.
type InventoryItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"nombre"`
	Description     string          `json:"descripcion"`
	Quantity        decimal.Decimal `json:"cantidad"`
	Unit            string          `json:"unidad"`
	MinimumQuantity decimal.Decimal `json:"cantidadMinima"`
	UnitCost        decimal.Decimal `json:"costoUnitario"`
	Category        string          `json:"categoria"`
	Supplier        string          `json:"proveedor"`
	Status          string          `json:"estado"`
	UpdatedBy       string          `json:"actualizadoPor"`
	CreatedAt       time.Time       `json:"creadoEn"`
	UpdatedAt       time.Time       `json:"actualizadoEn"`
}

// MovementResponse fila del libro de movimientos.
type MovementResponse struct {
	ID        string           `json:"id"`
	ItemID    string           `json:"insumoId"`
	Type      string           `json:"tipo"`
	Quantity  decimal.Decimal  `json:"cantidad"`
	TotalCost *decimal.Decimal `json:"costoTotal,omitempty"`
	Reason    string           `json:"motivo"`
	UserID    string           `json:"usuarioId"`
	CreatedAt time.Time        `json:"fecha"`
}

// MovementResultResponse respuesta de entrada/salida/ajuste.
type MovementResultResponse struct {
	Item     InventoryItemResponse `json:"item"`
	Movement MovementResponse      `json:"movimiento"`
}

// MovementListResponse página de movimientos, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReplenishmentSuggestionDTO sugerencia de compra para un insumo con alerta de stock.
type ReplenishmentSuggestionDTO struct {
	ItemID            string          `json:"insumoId"`
	Name              string          `json:"nombre"`
	Unit              string          `json:"unidad"`
	Supplier          string          `json:"proveedor"`
	Status            string          `json:"estado"`
	CurrentStock      decimal.Decimal `json:"cantidadActual"`
	MinimumQuantity   decimal.Decimal `json:"cantidadMinima"`
	TargetStock       decimal.Decimal `json:"cantidadObjetivo"` // 2 x mínimo
	SuggestedQuantity decimal.Decimal `json:"cantidadSugerida"` // objetivo - actual
	UnitCost          decimal.Decimal `json:"costoUnitario"`
	EstimatedCost     decimal.Decimal `json:"costoEstimado"` // sugerida x costo unitario
	Priority          int             `json:"prioridad"`     // 1 = más urgente
}
