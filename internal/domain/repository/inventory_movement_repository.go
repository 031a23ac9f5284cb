package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia del libro de movimientos (solo inserción y lectura).
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// ListByItem devuelve los movimientos del insumo, más recientes primero.
	ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error)
	CountByItem(ctx context.Context, itemID string) (int, error)
}
