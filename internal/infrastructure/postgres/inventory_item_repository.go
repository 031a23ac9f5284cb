package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

var inventoryItemColumns = []string{
	"id", "name", "description", "quantity", "unit", "minimum_quantity",
	"unit_cost", "category", "supplier", "updated_by", "created_at", "updated_at",
}

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL (pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia para insumos.
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un nuevo insumo.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query, args, err := psql.Insert("inventory_items").
		Columns(inventoryItemColumns...).
		Values(item.ID, item.Name, item.Description, item.Quantity, item.Unit, item.MinimumQuantity,
			item.UnitCost, item.Category, item.Supplier, item.UpdatedBy, item.CreatedAt, item.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert inventory item: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID. Devuelve nil, nil si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.get(ctx, id, true)
}

func (r *InventoryItemRepo) get(ctx context.Context, id string, lock bool) (*entity.InventoryItem, error) {
	if !validID(id) {
		return nil, nil
	}
	b := psql.Select(inventoryItemColumns...).From("inventory_items").Where(squirrel.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get inventory item: %w", err)
	}
	var item entity.InventoryItem
	if err := pgxscan.Get(ctx, r.q, &item, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &item, nil
}

// Update modifica los campos descriptivos del insumo. La cantidad solo cambia vía UpdateQuantity.
func (r *InventoryItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	if !validID(item.ID) {
		return domain.ErrNotFound
	}
	query, args, err := psql.Update("inventory_items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("unit", item.Unit).
		Set("minimum_quantity", item.MinimumQuantity).
		Set("unit_cost", item.UnitCost).
		Set("category", item.Category).
		Set("supplier", item.Supplier).
		Set("updated_by", item.UpdatedBy).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update inventory item: %w", err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad. El CHECK quantity >= 0 actúa como última barrera.
func (r *InventoryItemRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal, updatedBy string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	query, args, err := psql.Update("inventory_items").
		Set("quantity", quantity).
		Set("updated_by", updatedBy).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update quantity: %w", err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isCheckViolation(err, "inventory_items_quantity_check") {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los insumos ordenados por nombre. Search busca en nombre y descripción.
func (r *InventoryItemRepo) List(ctx context.Context, filter repository.InventoryItemFilter) ([]*entity.InventoryItem, error) {
	b := psql.Select(inventoryItemColumns...).From("inventory_items").OrderBy("name ASC", "id ASC")
	if filter.Category != "" {
		b = b.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"name": like},
			squirrel.ILike{"description": like},
		})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inventory items: %w", err)
	}
	var items []*entity.InventoryItem
	if err := pgxscan.Select(ctx, r.q, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	return items, nil
}

// Delete elimina el insumo; sus movimientos se borran en cascada.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
