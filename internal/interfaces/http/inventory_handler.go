package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
)

// InventoryHandler maneja insumos, movimientos y la lista de reposición (protegido).
type InventoryHandler struct {
	items         *inventory.ItemUseCase
	movements     *inventory.MovementUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(items *inventory.ItemUseCase, movements *inventory.MovementUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{items: items, movements: movements, replenishment: replenishment}
}

// List godoc
// @Summary      Listar insumos con su estado de stock
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        stockBajo  query  bool    false  "Solo insumos en estado bajo"
// @Param        categoria  query  string  false  "ingrediente | suministro | empaque | otro"
// @Param        estado     query  string  false  "bajo | reorden | ok"
// @Param        buscar     query  string  false  "Texto en nombre o descripción"
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var q dto.InventoryListQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	out, err := h.items.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear insumo
// @Description  La cantidad inicial, si es mayor que cero, queda registrada como entrada "Stock inicial".
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.items.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener insumo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del insumo"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.items.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Description  Modifica los datos descriptivos; la cantidad solo cambia con movimientos.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del insumo"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Datos del insumo"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.items.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Description  Elimina el insumo junto con su historial de movimientos.
// @Tags         inventario
// @Security     Bearer
// @Param        id   path  string  true  "ID del insumo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.items.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Entrada godoc
// @Summary      Registrar entrada de stock
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del insumo"
// @Param        body  body  dto.EntradaRequest  true  "cantidad, costoTotal (opcional), motivo"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/entrada [post]
func (h *InventoryHandler) Entrada(c *fiber.Ctx) error {
	var in dto.EntradaRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.movements.RegisterEntrada(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Salida godoc
// @Summary      Registrar salida de stock
// @Description  Rechaza con INSUFFICIENT_STOCK (detalles stockActual y cantidadSolicitada) si la cantidad supera el stock.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del insumo"
// @Param        body  body  dto.MovementRequest  true  "cantidad, motivo"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/salida [post]
func (h *InventoryHandler) Salida(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.movements.RegisterSalida(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Ajuste godoc
// @Summary      Registrar ajuste de stock
// @Description  Corrección con cantidad con signo: positiva suma, negativa resta. No puede dejar stock negativo.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del insumo"
// @Param        body  body  dto.MovementRequest  true  "cantidad (con signo), motivo"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/ajuste [post]
func (h *InventoryHandler) Ajuste(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.movements.RegisterAjuste(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos
// @Description  Movimientos del insumo, más recientes primero.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del insumo"
// @Param        limit   query  int     false  "Máximo de resultados (1-100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/movimientos [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := parseQuery(c, &page); !ok {
		return err
	}
	out, err := h.movements.ListMovements(c.UserContext(), c.Params("id"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Insumos en estado bajo o reorden con la cantidad sugerida hasta 2 x mínimo.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventario/reposicion [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), c.Query("categoria"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":      len(list),
		"reposicion": list,
	})
}
