package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/inventory"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// initialStockReason motivo del movimiento que registra la cantidad inicial de un insumo.
const initialStockReason = "Stock inicial"

// ItemUseCase CRUD de insumos y listados filtrados por estado de stock.
type ItemUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	now      func() time.Time
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(txRunner TxRunner, itemRepo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, itemRepo: itemRepo, now: time.Now}
}

// Create crea el insumo con cantidad 0 y, si viene cantidad inicial, la registra como entrada.
func (uc *ItemUseCase) Create(ctx context.Context, userID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := validateItemFields(in.Name, in.Unit, in.Category, in.MinimumQuantity, in.UnitCost); err != nil {
		return nil, err
	}
	if err := inventory.ValidateQuantity("cantidad", in.Quantity); err != nil {
		return nil, err
	}
	now := uc.now()
	item := &entity.InventoryItem{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Quantity:        decimal.Zero,
		Unit:            in.Unit,
		MinimumQuantity: in.MinimumQuantity,
		UnitCost:        in.UnitCost,
		Category:        in.Category,
		Supplier:        in.Supplier,
		UpdatedBy:       userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err := uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository, movRepo repository.InventoryMovementRepository) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		if !in.Quantity.IsPositive() {
			return nil
		}
		if err := itemRepo.UpdateQuantity(ctx, item.ID, in.Quantity, userID); err != nil {
			return err
		}
		item.Quantity = in.Quantity
		return movRepo.Create(ctx, &entity.InventoryMovement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Type:      entity.MovementTypeEntrada,
			Quantity:  in.Quantity,
			Reason:    initialStockReason,
			UserID:    userID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := ToItemResponse(item)
	return &out, nil
}

// GetByID devuelve el insumo o ErrNotFound.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := ToItemResponse(item)
	return &out, nil
}

// Update modifica los datos descriptivos. La cantidad solo cambia con movimientos.
func (uc *ItemUseCase) Update(ctx context.Context, id, userID string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := validateItemFields(in.Name, in.Unit, in.Category, in.MinimumQuantity, in.UnitCost); err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.Unit = in.Unit
	item.MinimumQuantity = in.MinimumQuantity
	item.UnitCost = in.UnitCost
	item.Category = in.Category
	item.Supplier = in.Supplier
	item.UpdatedBy = userID
	item.UpdatedAt = uc.now()
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := ToItemResponse(item)
	return &out, nil
}

// Delete elimina el insumo y, por cascada en BD, su historial.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.itemRepo.Delete(ctx, id)
}

// List aplica filtros SQL (categoría, búsqueda) y luego el evaluador de stock.
// stockBajo=true devuelve solo los insumos en estado bajo.
func (uc *ItemUseCase) List(ctx context.Context, q dto.InventoryListQuery) ([]dto.InventoryItemResponse, error) {
	var want inventory.StockStatus
	if q.Status != "" {
		s, ok := inventory.ParseStockStatus(q.Status)
		if !ok {
			return nil, domain.NewValidationError("estado", "valor inválido")
		}
		want = s
	}
	if q.LowStock {
		if want != "" && want != inventory.StatusBajo {
			return []dto.InventoryItemResponse{}, nil
		}
		want = inventory.StatusBajo
	}
	items, err := uc.itemRepo.List(ctx, repository.InventoryItemFilter{Category: q.Category, Search: q.Search})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		resp := ToItemResponse(it)
		if want != "" && resp.Status != string(want) {
			continue
		}
		out = append(out, resp)
	}
	return out, nil
}

func validateItemFields(name, unit, category string, minimum, unitCost decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("nombre", "es obligatorio")
	}
	if !entity.ValidUnit(unit) {
		return domain.NewValidationError("unidad", "unidad inválida")
	}
	if !entity.ValidItemCategory(category) {
		return domain.NewValidationError("categoria", "categoría inválida")
	}
	if err := inventory.ValidateQuantity("cantidadMinima", minimum); err != nil {
		return err
	}
	return inventory.ValidateMoney("costoUnitario", unitCost)
}
