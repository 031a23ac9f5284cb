package analytics

import "github.com/jhoicas/Restaurante-api/internal/application/dto"

// SpreadsheetGenerator genera la hoja de cálculo del reporte de ventas.
type SpreadsheetGenerator interface {
	GenerateSalesReport(report *dto.SalesReportDTO) ([]byte, error)
}
