package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los reportes.
type AnalyticsRepo struct {
	q        Querier
	timeZone string
}

// NewAnalyticsRepository construye el adaptador de analítica. timeZone (IANA) define
// el corte de día de GetDailySales.
func NewAnalyticsRepository(q Querier, timeZone string) *AnalyticsRepo {
	if timeZone == "" {
		timeZone = "UTC"
	}
	return &AnalyticsRepo{q: q, timeZone: timeZone}
}

// GetSalesTotals suma y cuenta las ventas con created_at en [start, end].
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (repository.SalesTotals, error) {
	var t repository.SalesTotals
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM sales
		WHERE created_at BETWEEN $1 AND $2`, start, end).Scan(&t.Total, &t.Count)
	if err != nil {
		return t, fmt.Errorf("sales totals: %w", err)
	}
	return t, nil
}

// GetEntradaCosts suma total_cost de las entradas del rango. Entradas sin costo cuentan 0.
func (r *AnalyticsRepo) GetEntradaCosts(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_cost), 0)
		FROM inventory_movements
		WHERE type = 'entrada'
		  AND created_at BETWEEN $1 AND $2`, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("entrada costs: %w", err)
	}
	return total, nil
}

// GetTopProducts agrega las líneas congeladas por producto. El nombre mostrado es el
// más reciente registrado en una venta del rango.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    si.product_id                                                        AS product_id,
	    (ARRAY_AGG(si.product_name ORDER BY s.created_at DESC))[1]          AS product_name,
	    SUM(si.quantity)::INT                                                AS quantity,
	    SUM(si.subtotal)                                                     AS revenue
	FROM sale_items si
	JOIN sales s ON s.id = si.sale_id
	WHERE s.created_at BETWEEN $1 AND $2
	GROUP BY si.product_id
	ORDER BY quantity DESC, revenue DESC, product_id ASC
	LIMIT $3`

	var out []repository.TopProductResult
	if err := pgxscan.Select(ctx, r.q, &out, query, start, end, limit); err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return out, nil
}

// GetDailySales agrupa por día calendario en la zona del restaurante. Los días sin ventas no aparecen.
func (r *AnalyticsRepo) GetDailySales(ctx context.Context, start, end time.Time) ([]repository.DailySalesResult, error) {
	const query = `
	SELECT
	    (created_at AT TIME ZONE $3)::DATE AS day,
	    COALESCE(SUM(total), 0)            AS total,
	    COUNT(*)                           AS count
	FROM sales
	WHERE created_at BETWEEN $1 AND $2
	GROUP BY day
	ORDER BY day`

	var out []repository.DailySalesResult
	if err := pgxscan.Select(ctx, r.q, &out, query, start, end, r.timeZone); err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	return out, nil
}

// GetSalesByPaymentMethod agrupa las ventas del rango por método de pago.
func (r *AnalyticsRepo) GetSalesByPaymentMethod(ctx context.Context, start, end time.Time) ([]repository.PaymentMethodResult, error) {
	const query = `
	SELECT
	    payment_method          AS method,
	    COALESCE(SUM(total), 0) AS total,
	    COUNT(*)                AS count
	FROM sales
	WHERE created_at BETWEEN $1 AND $2
	GROUP BY payment_method
	ORDER BY total DESC, payment_method ASC`

	var out []repository.PaymentMethodResult
	if err := pgxscan.Select(ctx, r.q, &out, query, start, end); err != nil {
		return nil, fmt.Errorf("sales by payment method: %w", err)
	}
	return out, nil
}

// GetAllTimeTotals ventas históricas y costo histórico de entradas.
func (r *AnalyticsRepo) GetAllTimeTotals(ctx context.Context) (repository.SalesTotals, decimal.Decimal, error) {
	var (
		t     repository.SalesTotals
		costs decimal.Decimal
	)
	err := r.q.QueryRow(ctx, `
		SELECT
		    (SELECT COALESCE(SUM(total), 0) FROM sales),
		    (SELECT COUNT(*) FROM sales),
		    (SELECT COALESCE(SUM(total_cost), 0) FROM inventory_movements WHERE type = 'entrada')`,
	).Scan(&t.Total, &t.Count, &costs)
	if err != nil {
		return t, decimal.Zero, fmt.Errorf("all time totals: %w", err)
	}
	return t, costs, nil
}
