package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// MenuRepository persiste la configuración del menú digital.
type MenuRepository interface {
	// Get devuelve nil, nil si aún no hay configuración guardada.
	Get(ctx context.Context) (*entity.MenuConfig, error)
	Upsert(ctx context.Context, cfg *entity.MenuConfig) error
}
