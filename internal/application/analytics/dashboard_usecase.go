// Package analytics contiene los casos de uso del dashboard: ventas, ganancias y
// alertas de inventario por ventana de tiempo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/inventory"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // productos en el widget del dashboard
	reportTopProducts    = 10 // productos en el reporte de ventas
	dashboardDays        = 7
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase arma los reportes del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) e InventoryItemRepository para alertas.
// El bloque histórico se incluye solo si el llamador lo pide; la decisión por rol la toma la capa HTTP.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	itemRepo      repository.InventoryItemRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, itemRepo repository.InventoryItemRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, itemRepo: itemRepo, now: time.Now}
}

// GetDashboard construye el resumen: hoy, semana, mes, alertas de stock, top 5 del mes y
// la serie de los últimos 7 días. Las consultas corren en paralelo.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, includeHistorical bool) (*dto.DashboardDTO, error) {
	now := uc.now()
	today, week, month := TodayWindow(now), WeekWindow(now), MonthWindow(now)
	last7 := LastDaysWindow(now, dashboardDays)

	out := &dto.DashboardDTO{DateLabel: monthLabel(now)}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Today, err = uc.periodMetrics(gctx, today)
		return wrap("métricas de hoy", err)
	})
	g.Go(func() (err error) {
		out.Week, err = uc.periodMetrics(gctx, week)
		return wrap("métricas de la semana", err)
	})
	g.Go(func() (err error) {
		out.Month, err = uc.periodMetrics(gctx, month)
		return wrap("métricas del mes", err)
	})
	g.Go(func() (err error) {
		out.TopProducts, err = uc.topProducts(gctx, month, dashboardTopProducts)
		return wrap("top productos", err)
	})
	g.Go(func() (err error) {
		out.Last7Days, err = uc.dailySeries(gctx, last7)
		return wrap("serie diaria", err)
	})
	g.Go(func() error {
		items, err := uc.itemRepo.List(gctx, repository.InventoryItemFilter{})
		if err != nil {
			return wrap("inventario", err)
		}
		s := inventory.Summarize(items)
		out.Inventory = dto.InventoryAlertsDTO{
			TotalItems: s.TotalItems,
			Low:        s.LowStock,
			Reorder:    s.ReorderStock,
			TotalValue: s.TotalValue.Round(2),
		}
		return nil
	})
	if includeHistorical {
		g.Go(func() (err error) {
			out.Historical, err = uc.historical(gctx)
			return wrap("histórico", err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSalesReport reporte de ventas del período: totales, serie diaria, métodos de pago y top 10.
func (uc *DashboardUseCase) GetSalesReport(ctx context.Context, period string, includeHistorical bool) (*dto.SalesReportDTO, error) {
	name, w, err := WindowFor(period, uc.now())
	if err != nil {
		return nil, err
	}
	out := &dto.SalesReportDTO{Period: name, From: w.Start, To: w.End}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := uc.analyticsRepo.GetSalesTotals(gctx, w.Start, w.End)
		if err != nil {
			return wrap("totales", err)
		}
		out.Total = totals.Total.Round(2)
		out.Count = totals.Count
		out.AverageTicket = averageTicket(totals)
		return nil
	})
	g.Go(func() (err error) {
		out.Daily, err = uc.dailySeries(gctx, w)
		return wrap("serie diaria", err)
	})
	g.Go(func() error {
		rows, err := uc.analyticsRepo.GetSalesByPaymentMethod(gctx, w.Start, w.End)
		if err != nil {
			return wrap("métodos de pago", err)
		}
		out.PaymentMethods = paymentBreakdown(rows)
		return nil
	})
	g.Go(func() (err error) {
		out.TopProducts, err = uc.topProducts(gctx, w, reportTopProducts)
		return wrap("top productos", err)
	})
	if includeHistorical {
		g.Go(func() (err error) {
			out.Historical, err = uc.historical(gctx)
			return wrap("histórico", err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProfitReport ganancia del período = ventas - costo de entradas.
func (uc *DashboardUseCase) GetProfitReport(ctx context.Context, period string, includeHistorical bool) (*dto.ProfitReportDTO, error) {
	name, w, err := WindowFor(period, uc.now())
	if err != nil {
		return nil, err
	}
	out := &dto.ProfitReportDTO{Period: name, From: w.Start, To: w.End}
	g, gctx := errgroup.WithContext(ctx)

	var m dto.PeriodMetricsDTO
	g.Go(func() (err error) {
		m, err = uc.periodMetrics(gctx, w)
		return wrap("ganancias", err)
	})
	if includeHistorical {
		g.Go(func() (err error) {
			out.Historical, err = uc.historical(gctx)
			return wrap("histórico", err)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.Sales = m.Sales
	out.EntradaCost = m.EntradaCost
	out.Profit = m.Profit
	out.MarginPct = decimal.Zero
	if m.Sales.IsPositive() {
		out.MarginPct = m.Profit.Div(m.Sales).Mul(hundred).Round(2)
	}
	return out, nil
}

func (uc *DashboardUseCase) periodMetrics(ctx context.Context, w Window) (dto.PeriodMetricsDTO, error) {
	totals, err := uc.analyticsRepo.GetSalesTotals(ctx, w.Start, w.End)
	if err != nil {
		return dto.PeriodMetricsDTO{}, err
	}
	cost, err := uc.analyticsRepo.GetEntradaCosts(ctx, w.Start, w.End)
	if err != nil {
		return dto.PeriodMetricsDTO{}, err
	}
	return dto.PeriodMetricsDTO{
		Sales:         totals.Total.Round(2),
		SalesCount:    totals.Count,
		EntradaCost:   cost.Round(2),
		Profit:        totals.Total.Sub(cost).Round(2),
		AverageTicket: averageTicket(totals),
	}, nil
}

func (uc *DashboardUseCase) historical(ctx context.Context) (*dto.HistoricalDTO, error) {
	totals, cost, err := uc.analyticsRepo.GetAllTimeTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HistoricalDTO{
		Sales:       totals.Total.Round(2),
		SalesCount:  totals.Count,
		EntradaCost: cost.Round(2),
		Profit:      totals.Total.Sub(cost).Round(2),
	}, nil
}

func (uc *DashboardUseCase) topProducts(ctx context.Context, w Window, limit int) ([]dto.TopProductDTO, error) {
	rows, err := uc.analyticsRepo.GetTopProducts(ctx, w.Start, w.End, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			Revenue:     r.Revenue.Round(2),
		})
	}
	return out, nil
}

// dailySeries devuelve un punto por día del rango; los días sin ventas van en cero.
func (uc *DashboardUseCase) dailySeries(ctx context.Context, w Window) ([]dto.DailySalesDTO, error) {
	rows, err := uc.analyticsRepo.GetDailySales(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return fillDaily(w, rows), nil
}

func fillDaily(w Window, rows []repository.DailySalesResult) []dto.DailySalesDTO {
	byDay := make(map[string]repository.DailySalesResult, len(rows))
	for _, r := range rows {
		byDay[r.Day.Format(dateLayout)] = r
	}
	days := w.Days()
	out := make([]dto.DailySalesDTO, 0, len(days))
	for _, d := range days {
		key := d.Format(dateLayout)
		p := dto.DailySalesDTO{Date: key, Label: dayLabel(d), Total: decimal.Zero}
		if r, ok := byDay[key]; ok {
			p.Total = r.Total.Round(2)
			p.Count = r.Count
		}
		out = append(out, p)
	}
	return out
}

// paymentBreakdown calcula el porcentaje de cada método sobre el total vendido.
func paymentBreakdown(rows []repository.PaymentMethodResult) []dto.PaymentMethodDTO {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}
	out := make([]dto.PaymentMethodDTO, 0, len(rows))
	for _, r := range rows {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = r.Total.Div(total).Mul(hundred).Round(2)
		}
		out = append(out, dto.PaymentMethodDTO{Method: r.Method, Total: r.Total.Round(2), Count: r.Count, Percentage: pct})
	}
	return out
}

func averageTicket(t repository.SalesTotals) decimal.Decimal {
	if t.Count == 0 {
		return decimal.Zero
	}
	return t.Total.Div(decimal.NewFromInt(int64(t.Count))).Round(2)
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dashboard: %s: %w", what, err)
}
