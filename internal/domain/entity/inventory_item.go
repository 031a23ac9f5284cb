package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida de un insumo.
const (
	UnitUnits  = "unidades"
	UnitKg     = "kg"
	UnitLb     = "lb"
	UnitLiters = "litros"
	UnitGrams  = "gramos"
	UnitMl     = "ml"
)

// Categorías de insumo.
const (
	CategoryIngredient = "ingrediente"
	CategorySupply     = "suministro"
	CategoryPackaging  = "empaque"
	CategoryOther      = "otro"
)

// ValidUnit indica si u es una unidad soportada.
func ValidUnit(u string) bool {
	switch u {
	case UnitUnits, UnitKg, UnitLb, UnitLiters, UnitGrams, UnitMl:
		return true
	}
	return false
}

// ValidItemCategory indica si c es una categoría de insumo soportada.
func ValidItemCategory(c string) bool {
	switch c {
	case CategoryIngredient, CategorySupply, CategoryPackaging, CategoryOther:
		return true
	}
	return false
}

// InventoryItem representa un insumo del restaurante con su stock actual.
// Quantity solo cambia vía movimientos (entrada, salida, ajuste).
type InventoryItem struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Quantity        decimal.Decimal `db:"quantity"`
	Unit            string          `db:"unit"`
	MinimumQuantity decimal.Decimal `db:"minimum_quantity"`
	UnitCost        decimal.Decimal `db:"unit_cost"`
	Category        string          `db:"category"`
	Supplier        string          `db:"supplier"`
	UpdatedBy       string          `db:"updated_by"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
