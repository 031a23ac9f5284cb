package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/sales"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC          *inventory.ItemUseCase
	MovementUC      *inventory.MovementUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	SaleUC          *sales.SaleUseCase
	ReceiptUC       *sales.ReceiptUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	ExportUC        *appanalytics.ExportUseCase
	ProductUC       *usecase.ProductUseCase
	MenuUC          *usecase.MenuUseCase
	UserUC          *usecase.UserUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)
	admin := RequireAdmin()

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", authMW, authHandler.Me)

	// Menú digital (público) y su configuración (admin)
	menuHandler := NewMenuHandler(deps.MenuUC)
	api.Get("/menu", menuHandler.GetMenu)
	api.Get("/menu/config", authMW, menuHandler.GetConfig)
	api.Put("/menu/config", authMW, admin, menuHandler.UpdateConfig)

	// Productos: lectura pública, escritura admin
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authMW, admin, productHandler.Create)
	products.Put("/:id", authMW, admin, productHandler.Update)
	products.Patch("/:id/disponibilidad", authMW, admin, productHandler.SetAvailability)
	products.Delete("/:id", authMW, admin, productHandler.Delete)

	// Inventario (protegido). /reposicion antes de /:id.
	inv := api.Group("/inventario", authMW)
	invHandler := NewInventoryHandler(deps.ItemUC, deps.MovementUC, deps.ReplenishmentUC)
	inv.Get("/", invHandler.List)
	inv.Get("/reposicion", admin, invHandler.Replenishment)
	inv.Post("/", admin, invHandler.Create)
	inv.Get("/:id", invHandler.GetByID)
	inv.Put("/:id", admin, invHandler.Update)
	inv.Delete("/:id", admin, invHandler.Delete)
	inv.Post("/:id/entrada", invHandler.Entrada)
	inv.Post("/:id/salida", invHandler.Salida)
	inv.Post("/:id/ajuste", invHandler.Ajuste)
	inv.Get("/:id/movimientos", invHandler.Movements)

	// Ventas (protegido)
	salesGroup := api.Group("/ventas", authMW)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/ticket", saleHandler.Ticket)
	salesGroup.Delete("/:id", admin, saleHandler.Delete)

	// Dashboard (protegido; histórico solo admin)
	dashboard := api.Group("/dashboard", authMW)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ExportUC)
	dashboard.Get("/", dashboardHandler.GetDashboard)
	dashboard.Get("/ventas", dashboardHandler.GetSalesReport)
	dashboard.Get("/ventas/export", admin, dashboardHandler.ExportSalesReport)
	dashboard.Get("/ganancias", dashboardHandler.GetProfitReport)

	// Usuarios (admin)
	users := api.Group("/usuarios", authMW, admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
