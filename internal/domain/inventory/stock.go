package inventory

import "github.com/shopspring/decimal"

// StockStatus estado de alerta de un insumo.
type StockStatus string

const (
	StatusBajo    StockStatus = "bajo"
	StatusReorden StockStatus = "reorden"
	StatusOK      StockStatus = "ok"
)

// reorderFactor margen sobre el mínimo a partir del cual el stock deja de estar en reorden.
var reorderFactor = decimal.NewFromFloat(1.5)

// EvaluateStock clasifica la cantidad actual frente al mínimo configurado.
//
//	bajo:    quantity <= minimum
//	reorden: minimum < quantity <= minimum * 1.5
//	ok:      resto
//
// Con mínimo 0, cantidad 0 es bajo y cualquier positivo es ok.
func EvaluateStock(quantity, minimum decimal.Decimal) StockStatus {
	if quantity.LessThanOrEqual(minimum) {
		return StatusBajo
	}
	if quantity.LessThanOrEqual(minimum.Mul(reorderFactor)) {
		return StatusReorden
	}
	return StatusOK
}

// ParseStockStatus valida un estado recibido como texto (filtros de listado).
func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StatusBajo, StatusReorden, StatusOK:
		return StockStatus(s), true
	}
	return "", false
}
