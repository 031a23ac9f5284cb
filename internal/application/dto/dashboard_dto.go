package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodMetricsDTO ventas y ganancia de una ventana (hoy, semana, mes).
type PeriodMetricsDTO struct {
	Sales         decimal.Decimal `json:"ventas"`
	SalesCount    int             `json:"numeroVentas"`
	EntradaCost   decimal.Decimal `json:"costoEntradas"`
	Profit        decimal.Decimal `json:"ganancia"`
	AverageTicket decimal.Decimal `json:"ticketPromedio"`
}

// HistoricalDTO totales de toda la historia. Solo para admin/superadmin.
type HistoricalDTO struct {
	Sales       decimal.Decimal `json:"ventas"`
	SalesCount  int             `json:"numeroVentas"`
	EntradaCost decimal.Decimal `json:"costoEntradas"`
	Profit      decimal.Decimal `json:"ganancia"`
}

// InventoryAlertsDTO conteo de alertas de stock.
type InventoryAlertsDTO struct {
	TotalItems int             `json:"totalInsumos"`
	Low        int             `json:"bajo"`
	Reorder    int             `json:"reorden"`
	TotalValue decimal.Decimal `json:"valorTotal"`
}

// TopProductDTO producto más vendido de la ventana.
type TopProductDTO struct {
	ProductID   string          `json:"productoId"`
	ProductName string          `json:"nombre"`
	Quantity    int             `json:"cantidad"`
	Revenue     decimal.Decimal `json:"ingresos"`
}

// DailySalesDTO punto de la serie diaria.
type DailySalesDTO struct {
	Date  string          `json:"fecha"`    // YYYY-MM-DD
	Label string          `json:"etiqueta"` // ej: "Lun"
	Total decimal.Decimal `json:"total"`
	Count int             `json:"numeroVentas"`
}

// PaymentMethodDTO participación de un método de pago.
type PaymentMethodDTO struct {
	Method     string          `json:"metodo"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"numeroVentas"`
	Percentage decimal.Decimal `json:"porcentaje"`
}

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Today       PeriodMetricsDTO   `json:"hoy"`
	Week        PeriodMetricsDTO   `json:"semana"`
	Month       PeriodMetricsDTO   `json:"mes"`
	Inventory   InventoryAlertsDTO `json:"inventario"`
	TopProducts []TopProductDTO    `json:"topProductos"`
	Last7Days   []DailySalesDTO    `json:"ultimos7Dias"`
	Historical  *HistoricalDTO     `json:"historico,omitempty"`
	DateLabel   string             `json:"fecha"` // ej: "Octubre 2026"
}

// SalesReportDTO respuesta de GET /api/dashboard/ventas.
type SalesReportDTO struct {
	Period         string             `json:"periodo"`
	From           time.Time          `json:"desde"`
	To             time.Time          `json:"hasta"`
	Total          decimal.Decimal    `json:"total"`
	Count          int                `json:"numeroVentas"`
	AverageTicket  decimal.Decimal    `json:"ticketPromedio"`
	Daily          []DailySalesDTO    `json:"ventasDiarias"`
	PaymentMethods []PaymentMethodDTO `json:"metodosPago"`
	TopProducts    []TopProductDTO    `json:"topProductos"`
	Historical     *HistoricalDTO     `json:"historico,omitempty"`
}

// ProfitReportDTO respuesta de GET /api/dashboard/ganancias.
type ProfitReportDTO struct {
	Period      string          `json:"periodo"`
	From        time.Time       `json:"desde"`
	To          time.Time       `json:"hasta"`
	Sales       decimal.Decimal `json:"ventas"`
	EntradaCost decimal.Decimal `json:"costoEntradas"`
	Profit      decimal.Decimal `json:"ganancia"`
	MarginPct   decimal.Decimal `json:"margen"` // ganancia / ventas * 100
	Historical  *HistoricalDTO  `json:"historico,omitempty"`
}

// ReportQuery parámetros de los reportes del dashboard.
type ReportQuery struct {
	Period string `query:"periodo" validate:"omitempty,oneof=hoy semana mes"`
}
