package analytics

import (
	"context"
	"fmt"
)

// ExportUseCase exporta el reporte de ventas a Excel.
type ExportUseCase struct {
	dashboard *DashboardUseCase
	generator SpreadsheetGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(dashboard *DashboardUseCase, generator SpreadsheetGenerator) *ExportUseCase {
	return &ExportUseCase{dashboard: dashboard, generator: generator}
}

// ExportSalesReport devuelve el .xlsx del período y su nombre de archivo.
func (uc *ExportUseCase) ExportSalesReport(ctx context.Context, period string) ([]byte, string, error) {
	report, err := uc.dashboard.GetSalesReport(ctx, period, false)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.generator.GenerateSalesReport(report)
	if err != nil {
		return nil, "", fmt.Errorf("exportar ventas: %w", err)
	}
	name := fmt.Sprintf("ventas_%s_%s_%s.xlsx", report.Period, report.From.Format(dateLayout), report.To.Format(dateLayout))
	return data, name, nil
}
