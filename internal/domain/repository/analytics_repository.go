package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotals suma y conteo de ventas en un rango.
type SalesTotals struct {
	Total decimal.Decimal
	Count int
}

// TopProductResult producto más vendido, agregado sobre las líneas congeladas.
type TopProductResult struct {
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
}

// DailySalesResult ventas de un día calendario. Los días sin ventas no aparecen.
type DailySalesResult struct {
	Day   time.Time
	Total decimal.Decimal
	Count int
}

// PaymentMethodResult ventas agrupadas por método de pago.
type PaymentMethodResult struct {
	Method string
	Total  decimal.Decimal
	Count  int
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Todos los rangos son [start, end] inclusivos.
type AnalyticsRepository interface {
	GetSalesTotals(ctx context.Context, start, end time.Time) (SalesTotals, error)
	// GetEntradaCosts suma costo_total de los movimientos de entrada del rango.
	GetEntradaCosts(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
	GetDailySales(ctx context.Context, start, end time.Time) ([]DailySalesResult, error)
	GetSalesByPaymentMethod(ctx context.Context, start, end time.Time) ([]PaymentMethodResult, error)
	// GetAllTimeTotals totales históricos sin rango.
	GetAllTimeTotals(ctx context.Context) (SalesTotals, decimal.Decimal, error)
}
