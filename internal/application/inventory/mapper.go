package inventory

import (
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/inventory"
)

// ToItemResponse mapea el insumo y calcula su estado de stock.
func ToItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:              it.ID,
		Name:            it.Name,
		Description:     it.Description,
		Quantity:        it.Quantity,
		Unit:            it.Unit,
		MinimumQuantity: it.MinimumQuantity,
		UnitCost:        it.UnitCost,
		Category:        it.Category,
		Supplier:        it.Supplier,
		Status:          string(inventory.EvaluateStock(it.Quantity, it.MinimumQuantity)),
		UpdatedBy:       it.UpdatedBy,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

// ToMovementResponse mapea un movimiento del libro.
func ToMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		TotalCost: m.TotalCost,
		Reason:    m.Reason,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
