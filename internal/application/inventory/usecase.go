package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/inventory"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// MovementUseCase registra entradas, salidas y ajustes de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) sobre el insumo y Commit/Rollback.
type MovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	movRepo  repository.InventoryMovementRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewMovementUseCase construye el caso de uso. log puede ser nil.
func NewMovementUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
	log *logger.Logger,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		movRepo:  movRepo,
		log:      log.Named("inventory"),
		now:      time.Now,
	}
}

// MovementInput datos de un movimiento. TotalCost solo aplica a entradas.
type MovementInput struct {
	ItemID    string
	UserID    string
	Type      string
	Quantity  decimal.Decimal
	TotalCost *decimal.Decimal
	Reason    string
}

// RegisterEntrada suma cantidad al insumo. costoTotal queda en el movimiento; el costo unitario del insumo no cambia.
func (uc *MovementUseCase) RegisterEntrada(ctx context.Context, itemID, userID string, in dto.EntradaRequest) (*dto.MovementResultResponse, error) {
	return uc.Register(ctx, MovementInput{
		ItemID:    itemID,
		UserID:    userID,
		Type:      entity.MovementTypeEntrada,
		Quantity:  in.Quantity,
		TotalCost: in.TotalCost,
		Reason:    in.Reason,
	})
}

// RegisterSalida descuenta cantidad; falla con InsufficientStockError si el stock quedaría negativo.
func (uc *MovementUseCase) RegisterSalida(ctx context.Context, itemID, userID string, in dto.MovementRequest) (*dto.MovementResultResponse, error) {
	return uc.Register(ctx, MovementInput{
		ItemID:   itemID,
		UserID:   userID,
		Type:     entity.MovementTypeSalida,
		Quantity: in.Quantity,
		Reason:   in.Reason,
	})
}

// RegisterAjuste aplica un delta con signo (conteo físico, correcciones).
func (uc *MovementUseCase) RegisterAjuste(ctx context.Context, itemID, userID string, in dto.MovementRequest) (*dto.MovementResultResponse, error) {
	return uc.Register(ctx, MovementInput{
		ItemID:   itemID,
		UserID:   userID,
		Type:     entity.MovementTypeAjuste,
		Quantity: in.Quantity,
		Reason:   in.Reason,
	})
}

// Register valida la entrada antes de abrir la transacción, bloquea el insumo,
// aplica el delta y guarda el movimiento. Si algo falla no queda ninguna escritura.
func (uc *MovementUseCase) Register(ctx context.Context, in MovementInput) (*dto.MovementResultResponse, error) {
	if in.ItemID == "" {
		return nil, domain.NewValidationError("id", "insumo requerido")
	}
	delta, err := inventory.SignedDelta(in.Type, in.Quantity)
	if err != nil {
		return nil, err
	}
	reason, err := inventory.ValidateReason(in.Reason)
	if err != nil {
		return nil, err
	}
	var totalCost *decimal.Decimal
	if in.Type == entity.MovementTypeEntrada && in.TotalCost != nil {
		if err := inventory.ValidateMoney("costoTotal", *in.TotalCost); err != nil {
			return nil, err
		}
		c := *in.TotalCost
		totalCost = &c
	}

	var out dto.MovementResultResponse
	err = uc.txRunner.Run(ctx, func(itemRepo repository.InventoryItemRepository, movRepo repository.InventoryMovementRepository) error {
		item, err := itemRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		next, err := inventory.ApplyMovement(item.ID, item.Quantity, delta)
		if err != nil {
			return err
		}
		now := uc.now()
		if err := itemRepo.UpdateQuantity(ctx, item.ID, next, in.UserID); err != nil {
			return err
		}
		mov := &entity.InventoryMovement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			TotalCost: totalCost,
			Reason:    reason,
			UserID:    in.UserID,
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		item.Quantity = next
		item.UpdatedBy = in.UserID
		item.UpdatedAt = now
		out = dto.MovementResultResponse{Item: ToItemResponse(item), Movement: ToMovementResponse(mov)}
		return nil
	})
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			uc.log.Warn().Str("item_id", in.ItemID).Str("type", in.Type).
				Str("current", stockErr.Current.String()).Str("requested", stockErr.Requested.String()).
				Msg("movimiento rechazado por stock insuficiente")
		}
		return nil, err
	}
	uc.log.Info().Str("item_id", in.ItemID).Str("type", in.Type).Str("quantity", in.Quantity.String()).
		Str("stock", out.Item.Quantity.String()).Msg("movimiento registrado")
	return &out, nil
}

// ListMovements devuelve el historial del insumo, más recientes primero.
func (uc *MovementUseCase) ListMovements(ctx context.Context, itemID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByItem(ctx, itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.CountByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}
