package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/auth"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/sales"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

const (
	harinaID = "11111111-1111-4111-8111-111111111111"
	cafeID   = "22222222-2222-4222-8222-222222222222"
	teID     = "33333333-3333-4333-8333-333333333333"
)

type testEnv struct {
	app   *fiber.App
	store *store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := newStore()
	now := time.Now()
	s.items[harinaID] = &entity.InventoryItem{
		ID: harinaID, Name: "Harina", Quantity: decimal.NewFromInt(5), Unit: entity.UnitKg,
		MinimumQuantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(3),
		Category: entity.CategoryIngredient, CreatedAt: now, UpdatedAt: now,
	}
	s.products[cafeID] = &entity.Product{ID: cafeID, Name: "Café", Price: decimal.RequireFromString("2.50"), Category: "Bebidas", Available: true}
	s.products[teID] = &entity.Product{ID: teID, Name: "Té", Price: decimal.NewFromInt(2), Category: "Bebidas", Available: false}

	log := logger.Nop()
	items, movs, users := lockedItemRepo{s}, lockedMovRepo{s}, userRepo{s}
	products, sl, menu := productRepo{s}, lockedSaleRepo{s}, menuRepo{s}

	saleUC := sales.NewSaleUseCase(s, sl, products, users, log)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo{s}, items)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.FiberErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:          inventory.NewItemUseCase(s, items),
		MovementUC:      inventory.NewMovementUseCase(s, items, movs, log),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(items),
		SaleUC:          saleUC,
		ReceiptUC:       sales.NewReceiptUseCase(saleUC, menu, fakeReceipt{}),
		DashboardUC:     dashboardUC,
		ExportUC:        appanalytics.NewExportUseCase(dashboardUC, fakeSpreadsheet{}),
		ProductUC:       usecase.NewProductUseCase(products),
		MenuUC:          usecase.NewMenuUseCase(menu, products),
		UserUC:          usecase.NewUserUseCase(users),
		AuthUC:          auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:       testJWTSecret,
	})
	return &testEnv{app: app, store: s}
}

func (e *testEnv) do(t *testing.T, method, path, role string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestInventario_SalidaConStockInsuficiente(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/inventario/"+harinaID+"/salida", "staff",
		map[string]any{"cantidad": 8, "motivo": "Producción"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	details := body["details"].(map[string]any)
	assert.Equal(t, "5", details["stockActual"])
	assert.Equal(t, "8", details["cantidadSolicitada"])

	// El stock no cambió y no quedó movimiento.
	assert.True(t, decimal.NewFromInt(5).Equal(env.store.items[harinaID].Quantity))
	assert.Empty(t, env.store.movements)
}

func TestInventario_EntradaYSalida(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/inventario/"+harinaID+"/entrada", "staff",
		map[string]any{"cantidad": "20", "costoTotal": "60", "motivo": "Compra"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	item := body["item"].(map[string]any)
	assert.Equal(t, "25", item["cantidad"])
	assert.Equal(t, "ok", item["estado"])

	resp, body = env.do(t, http.MethodPost, "/api/inventario/"+harinaID+"/salida", "staff",
		map[string]any{"cantidad": 3, "motivo": "Producción"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mov := body["movimiento"].(map[string]any)
	assert.Equal(t, "salida", mov["tipo"])
	assert.Equal(t, "3", mov["cantidad"])

	resp, body = env.do(t, http.MethodGet, "/api/inventario/"+harinaID+"/movimientos", "staff", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["items"].([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "salida", list[0].(map[string]any)["tipo"])
}

func TestInventario_SinMotivo_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodPost, "/api/inventario/"+harinaID+"/ajuste", "staff",
		map[string]any{"cantidad": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestInventario_InsumoInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodPost, "/api/inventario/no-existe/entrada", "staff",
		map[string]any{"cantidad": 1, "motivo": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestInventario_ListaStockBajo(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/inventario?stockBajo=true", nil)
	req.Header.Set("Authorization", tokenForRole(t, "staff"))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "bajo", list[0]["estado"])
}

func TestInventario_ReposicionSoloAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodGet, "/api/inventario/reposicion", "staff", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := env.do(t, http.MethodGet, "/api/inventario/reposicion", "admin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])
}

func TestInventario_SinToken_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/api/inventario", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVentas_CrearCongelaPrecio(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/ventas", "staff", map[string]any{
		"items":      []map[string]any{{"productoId": cafeID, "cantidad": 2}},
		"metodoPago": "efectivo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "5", body["total"])
	saleID := body["id"].(string)

	// Cambiar el precio no altera la venta guardada.
	env.store.products[cafeID].Price = decimal.NewFromInt(3)
	resp, body = env.do(t, http.MethodGet, "/api/ventas/"+saleID, "staff", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	line := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "2.5", line["precioUnitario"])
	assert.Equal(t, "Café", line["nombreProducto"])
}

func TestVentas_Errores(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"carrito vacío", map[string]any{"items": []any{}, "metodoPago": "efectivo"}, http.StatusBadRequest, "EMPTY_CART"},
		{"producto inexistente", map[string]any{"items": []map[string]any{{"productoId": "nope", "cantidad": 1}}, "metodoPago": "efectivo"}, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"producto no disponible", map[string]any{"items": []map[string]any{{"productoId": teID, "cantidad": 1}}, "metodoPago": "efectivo"}, http.StatusBadRequest, "PRODUCT_UNAVAILABLE"},
		{"método inválido", map[string]any{"items": []map[string]any{{"productoId": cafeID, "cantidad": 1}}, "metodoPago": "trueque"}, http.StatusBadRequest, "VALIDATION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.do(t, http.MethodPost, "/api/ventas", "staff", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body["code"])
		})
	}
	assert.Empty(t, env.store.sales)
}

func TestVentas_Ticket(t *testing.T) {
	env := newTestEnv(t)
	_, body := env.do(t, http.MethodPost, "/api/ventas", "staff", map[string]any{
		"items":      []map[string]any{{"productoId": cafeID, "cantidad": 1}},
		"metodoPago": "tarjeta",
	})
	saleID := body["id"].(string)

	resp, _ := env.do(t, http.MethodGet, "/api/ventas/"+saleID+"/ticket", "staff", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ticket_"+saleID[:8]+".pdf")
}

func TestVentas_EliminarSoloAdmin(t *testing.T) {
	env := newTestEnv(t)
	_, body := env.do(t, http.MethodPost, "/api/ventas", "staff", map[string]any{
		"items":      []map[string]any{{"productoId": cafeID, "cantidad": 1}},
		"metodoPago": "efectivo",
	})
	saleID := body["id"].(string)

	resp, _ := env.do(t, http.MethodDelete, "/api/ventas/"+saleID, "staff", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.do(t, http.MethodDelete, "/api/ventas/"+saleID, "admin", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDashboard_HistoricoSoloAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/dashboard", "staff", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "historico")
	assert.Len(t, body["ultimos7Dias"].([]any), 7)

	resp, body = env.do(t, http.MethodGet, "/api/dashboard", "superadmin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "historico")
}

func TestDashboard_PeriodoInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/dashboard/ventas?periodo=anio", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestDashboard_Export(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/api/dashboard/ventas/export?periodo=semana", "admin", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}

func TestMenu_PublicoSoloDisponibles(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/menu", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cats := body["categorias"].([]any)
	require.Len(t, cats, 1)
	prods := cats[0].(map[string]any)["productos"].([]any)
	require.Len(t, prods, 1)
	assert.Equal(t, "Café", prods[0].(map[string]any)["nombre"])
}

func TestProductos_DisponibilidadRequiereAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPatch, "/api/productos/"+teID+"/disponibilidad", "staff", map[string]any{"disponible": true})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := env.do(t, http.MethodPatch, "/api/productos/"+teID+"/disponibilidad", "admin", map[string]any{"disponible": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["disponible"])
}

func TestAuth_LoginYMe(t *testing.T) {
	env := newTestEnv(t)
	created, err := usecase.NewUserUseCase(userRepo{env.store}).EnsureSuperAdmin(context.Background(), "jefe@resto.pe", "secreta123", "Jefe")
	require.NoError(t, err)
	require.True(t, created)

	resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "jefe@resto.pe", "password": "secreta123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer meResp.Body.Close()
	assert.Equal(t, http.StatusOK, meResp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "jefe@resto.pe", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestRutaInexistente(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ROUTE_NOT_FOUND", body["code"])
}

func TestInventario_CantidadConDemasiadosDecimales(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/inventario/"+harinaID+"/salida", "staff",
		map[string]any{"cantidad": "0.0004", "motivo": "Merma"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	resp, body = env.do(t, http.MethodPost, "/api/inventario/"+harinaID+"/entrada", "staff",
		map[string]any{"cantidad": "1", "costoTotal": "3.999", "motivo": "Compra"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	assert.True(t, decimal.NewFromInt(5).Equal(env.store.items[harinaID].Quantity))
	assert.Empty(t, env.store.movements)
}
