// Package sale arma ventas a partir del carrito y del catálogo vigente.
package sale

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// CartLine línea del carrito tal como la envía el POS.
type CartLine struct {
	ProductID string
	Quantity  int
}

// ValidateCart revisa forma del carrito antes de consultar el catálogo.
func ValidateCart(lines []CartLine, paymentMethod string) error {
	if len(lines) == 0 {
		return domain.ErrEmptyCart
	}
	for _, l := range lines {
		if l.ProductID == "" {
			return domain.NewValidationError("productoId", "es obligatorio")
		}
		if l.Quantity < 1 {
			return domain.NewValidationError("cantidad", "debe ser al menos 1")
		}
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return domain.NewValidationError("metodoPago", "método de pago inválido")
	}
	return nil
}

// FreezeItems copia nombre y precio de cada producto en la línea de venta.
// products debe contener los productos resueltos por id; se reporta el primer faltante o no disponible.
func FreezeItems(lines []CartLine, products map[string]*entity.Product) ([]entity.SaleItem, decimal.Decimal, error) {
	items := make([]entity.SaleItem, 0, len(lines))
	total := decimal.Zero
	for i, l := range lines {
		p, ok := products[l.ProductID]
		if !ok || p == nil {
			return nil, decimal.Zero, &domain.ProductError{ProductID: l.ProductID, Err: domain.ErrProductNotFound}
		}
		if !p.Available {
			return nil, decimal.Zero, &domain.ProductError{ProductID: p.ID, Name: p.Name, Err: domain.ErrProductUnavailable}
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		items = append(items, entity.SaleItem{
			Position:    i + 1,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    l.Quantity,
			UnitPrice:   p.Price,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}
	return items, total, nil
}
