package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// InventoryItemFilter filtros de listado aplicados en SQL. El estado de stock se filtra en el caso de uso.
type InventoryItemFilter struct {
	Category string
	Search   string
}

// InventoryItemRepository define el puerto de persistencia para insumos.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene efecto dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	// Update modifica los campos descriptivos; nunca la cantidad.
	Update(ctx context.Context, item *entity.InventoryItem) error
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, updatedBy string) error
	List(ctx context.Context, filter InventoryItemFilter) ([]*entity.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}
