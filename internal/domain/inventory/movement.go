package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// Escalas de las columnas NUMERIC: cantidades con 3 decimales, montos con 2.
const (
	QuantityScale = 3
	MoneyScale    = 2
)

// fitsScale indica si v no tiene más decimales que places.
func fitsScale(v decimal.Decimal, places int32) bool {
	return v.Equal(v.Round(places))
}

// ValidateQuantity rechaza cantidades negativas o con más de 3 decimales.
func ValidateQuantity(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.NewValidationError(field, "no puede ser negativa")
	}
	if !fitsScale(v, QuantityScale) {
		return domain.NewValidationError(field, "admite como máximo 3 decimales")
	}
	return nil
}

// ValidateMoney rechaza montos negativos o con más de 2 decimales.
func ValidateMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.NewValidationError(field, "no puede ser negativo")
	}
	if !fitsScale(v, MoneyScale) {
		return domain.NewValidationError(field, "admite como máximo 2 decimales")
	}
	return nil
}

// SignedDelta convierte la cantidad recibida en el delta que se aplica al stock.
// entrada y salida exigen cantidad positiva; ajuste acepta cualquier signo salvo cero.
func SignedDelta(movementType string, quantity decimal.Decimal) (decimal.Decimal, error) {
	if !fitsScale(quantity, QuantityScale) {
		return decimal.Zero, domain.NewValidationError("cantidad", "admite como máximo 3 decimales")
	}
	switch movementType {
	case entity.MovementTypeEntrada:
		if !quantity.IsPositive() {
			return decimal.Zero, domain.NewValidationError("cantidad", "debe ser mayor que cero")
		}
		return quantity, nil
	case entity.MovementTypeSalida:
		if !quantity.IsPositive() {
			return decimal.Zero, domain.NewValidationError("cantidad", "debe ser mayor que cero")
		}
		return quantity.Neg(), nil
	case entity.MovementTypeAjuste:
		if quantity.IsZero() {
			return decimal.Zero, domain.NewValidationError("cantidad", "el ajuste no puede ser cero")
		}
		return quantity, nil
	}
	return decimal.Zero, domain.NewValidationError("tipo", "tipo de movimiento inválido")
}

// ApplyMovement devuelve la nueva cantidad tras aplicar delta sobre current.
// Nunca deja stock negativo: en ese caso retorna *domain.InsufficientStockError.
func ApplyMovement(itemID string, current, delta decimal.Decimal) (decimal.Decimal, error) {
	next := current.Add(delta)
	if next.IsNegative() {
		return current, &domain.InsufficientStockError{
			ItemID:    itemID,
			Current:   current,
			Requested: delta.Abs(),
		}
	}
	return next, nil
}

// ValidateReason exige un motivo no vacío para cada movimiento.
func ValidateReason(reason string) (string, error) {
	r := strings.TrimSpace(reason)
	if r == "" {
		return "", domain.NewValidationError("motivo", "es obligatorio")
	}
	return r, nil
}
