package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

var _ analytics.SpreadsheetGenerator = (*ReportGenerator)(nil)

// Nombres de hoja del libro exportado.
const (
	SheetSummary  = "Resumen"
	SheetDaily    = "Ventas diarias"
	SheetProducts = "Top productos"
	SheetPayments = "Métodos de pago"
)

// ReportGenerator exporta reportes del dashboard a .xlsx con excelize.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// GenerateSalesReport escribe una hoja por bloque del reporte y devuelve el libro en bytes.
func (g *ReportGenerator) GenerateSalesReport(report *dto.SalesReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("excel: reporte nulo")
	}
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C0392B"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	summary := [][]any{
		{"Periodo", report.Period},
		{"Desde", report.From.Format("2006-01-02")},
		{"Hasta", report.To.Format("2006-01-02")},
		{"Total vendido", money(report.Total)},
		{"Número de ventas", report.Count},
		{"Ticket promedio", money(report.AverageTicket)},
	}
	if h := report.Historical; h != nil {
		summary = append(summary,
			[]any{"Ventas históricas", money(h.Sales)},
			[]any{"Costo histórico de entradas", money(h.EntradaCost)},
			[]any{"Ganancia histórica", money(h.Profit)},
		)
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetSummary, "A", "A", 30)

	daily := [][]any{{"Fecha", "Día", "Total", "Ventas"}}
	for _, d := range report.Daily {
		daily = append(daily, []any{d.Date, d.Label, money(d.Total), d.Count})
	}
	if err := addTable(f, SheetDaily, daily, header); err != nil {
		return nil, err
	}

	products := [][]any{{"Producto", "Cantidad", "Ingresos"}}
	for _, p := range report.TopProducts {
		products = append(products, []any{p.ProductName, p.Quantity, money(p.Revenue)})
	}
	if err := addTable(f, SheetProducts, products, header); err != nil {
		return nil, err
	}

	payments := [][]any{{"Método", "Total", "Ventas", "%"}}
	for _, p := range report.PaymentMethods {
		payments = append(payments, []any{p.Method, money(p.Total), p.Count, money(p.Percentage)})
	}
	if err := addTable(f, SheetPayments, payments, header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// addTable crea la hoja, escribe las filas y aplica el estilo de cabecera a la primera.
func addTable(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", sheet, err)
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return fmt.Errorf("excel: coordenadas: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("excel: estilo cabecera %s: %w", sheet, err)
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excel: coordenadas: %w", err)
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("excel: fila %d de %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
