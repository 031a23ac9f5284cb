package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada" // ingreso de stock (compra, reposición)
	MovementTypeSalida  = "salida"  // consumo o merma
	MovementTypeAjuste  = "ajuste"  // corrección manual con delta firmado
)

// InventoryMovement registro inmutable del libro de movimientos de un insumo.
// Quantity es la cantidad registrada: positiva en entrada y salida, con signo en ajuste.
type InventoryMovement struct {
	ID        string           `db:"id"`
	ItemID    string           `db:"item_id"`
	Type      string           `db:"type"`
	Quantity  decimal.Decimal  `db:"quantity"`
	TotalCost *decimal.Decimal `db:"total_cost"`
	Reason    string           `db:"reason"`
	UserID    string           `db:"user_id"`
	CreatedAt time.Time        `db:"created_at"`
}
