package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
// El bloque histórico solo se incluye para admin y superadmin.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	export *appanalytics.ExportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, export *appanalytics.ExportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, export: export}
}

// GetDashboard godoc
// @Summary      Resumen del dashboard
// @Description  Ventas y ganancia de hoy, semana y mes; alertas de inventario; top 5 productos del mes
//
//	y serie de los últimos 7 días con ceros en días sin ventas.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.UserContext(), IsAdmin(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetSalesReport godoc
// @Summary      Reporte de ventas por periodo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        periodo  query  string  false  "hoy | semana | mes"  default(mes)
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/ventas [get]
func (h *DashboardHandler) GetSalesReport(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.GetSalesReport(c.UserContext(), q.Period, IsAdmin(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProfitReport godoc
// @Summary      Reporte de ganancias por periodo
// @Description  Ganancia = ventas - costo de entradas del periodo. Admin recibe además el histórico.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        periodo  query  string  false  "hoy | semana | mes"  default(mes)
// @Success      200  {object}  dto.ProfitReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/ganancias [get]
func (h *DashboardHandler) GetProfitReport(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	out, err := h.uc.GetProfitReport(c.UserContext(), q.Period, IsAdmin(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportSalesReport godoc
// @Summary      Exportar reporte de ventas a Excel
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        periodo  query  string  false  "hoy | semana | mes"  default(mes)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/ventas/export [get]
func (h *DashboardHandler) ExportSalesReport(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	data, filename, err := h.export.ExportSalesReport(c.UserContext(), q.Period)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
