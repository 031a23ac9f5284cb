package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// MenuHandler expone el menú digital público y su configuración.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// GetMenu godoc
// @Summary      Menú digital público
// @Description  Configuración del restaurante y productos disponibles agrupados por categoría.
// @Tags         menu
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Router       /api/menu [get]
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	out, err := h.uc.GetMenu(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *MenuHandler) GetConfig(c *fiber.Ctx) error {
	out, err := h.uc.GetConfig(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *MenuHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.MenuConfigRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateConfig(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
