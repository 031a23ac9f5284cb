package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PaymentCash   = "efectivo"
	PaymentCard   = "tarjeta"
	PaymentWallet = "billetera"
	PaymentOther  = "otro"
)

// ValidPaymentMethod indica si m es un método de pago soportado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet, PaymentOther:
		return true
	}
	return false
}

// Sale cabecera de una venta. Items es una foto del catálogo al momento de vender.
type Sale struct {
	ID            string          `db:"id"`
	Total         decimal.Decimal `db:"total"`
	PaymentMethod string          `db:"payment_method"`
	UserID        string          `db:"user_id"`
	CustomerName  string          `db:"customer_name"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	Items         []SaleItem      `db:"-"`
}

// SaleItem línea de venta con nombre y precio congelados.
type SaleItem struct {
	SaleID      string          `db:"sale_id"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Subtotal    decimal.Decimal `db:"subtotal"`
}
