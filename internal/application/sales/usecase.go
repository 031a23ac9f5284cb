package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/sale"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// SaleUseCase registra ventas congelando nombre y precio de cada producto.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewSaleUseCase construye el caso de uso. log puede ser nil.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) *SaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		log:         log.Named("sales"),
		now:         time.Now,
	}
}

// CreateSale valida el carrito, resuelve los productos y guarda la venta con sus líneas congeladas.
// Cualquier producto inexistente o no disponible aborta la venta completa.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	lines := make([]sale.CartLine, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, sale.CartLine{ProductID: canonicalID(it.ProductID), Quantity: it.Quantity})
	}
	if err := sale.ValidateCart(lines, in.PaymentMethod); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	products, err := uc.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items, total, err := sale.FreezeItems(lines, products)
	if err != nil {
		uc.log.Warn().Err(err).Msg("venta rechazada")
		return nil, err
	}

	s := &entity.Sale{
		ID:            uuid.New().String(),
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		UserID:        userID,
		CustomerName:  strings.TrimSpace(in.Customer),
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     uc.now(),
		Items:         items,
	}
	for i := range s.Items {
		s.Items[i].SaleID = s.ID
	}
	if err := uc.txRunner.RunSales(ctx, func(saleRepo repository.SaleRepository) error {
		return saleRepo.Create(ctx, s)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", s.ID).Str("total", s.Total.String()).Int("items", len(s.Items)).
		Str("payment_method", s.PaymentMethod).Msg("venta registrada")

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := ToSaleResponse(s, user)
	return &out, nil
}

// GetByID devuelve la venta tal como se guardó.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	out := ToSaleResponse(s, user)
	return &out, nil
}

// List lista ventas por rango de fechas (YYYY-MM-DD, ambos extremos inclusivos).
func (uc *SaleUseCase) List(ctx context.Context, q dto.SaleListQuery) (*dto.SaleListResponse, error) {
	page := dto.PageRequest{Limit: q.Limit, Offset: q.Offset}
	page.DefaultPage()
	filter := repository.SaleFilter{Limit: page.Limit, Offset: page.Offset}
	if q.From != "" {
		from, err := time.ParseInLocation(dateLayout, q.From, time.Local)
		if err != nil {
			return nil, domain.NewValidationError("desde", "formato esperado YYYY-MM-DD")
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.ParseInLocation(dateLayout, q.To, time.Local)
		if err != nil {
			return nil, domain.NewValidationError("hasta", "formato esperado YYYY-MM-DD")
		}
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &end
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.NewValidationError("desde", "debe ser anterior a hasta")
	}

	list, total, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	userIDs := make([]string, 0, len(list))
	for _, s := range list {
		userIDs = append(userIDs, s.UserID)
	}
	users, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s, users[s.UserID]))
	}
	return &dto.SaleListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina la venta con sus líneas.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.saleRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("sale_id", id).Msg("venta eliminada")
	return nil
}

// canonicalID devuelve el UUID en su forma canónica (minúsculas) para que coincida con las
// claves que devuelve el repositorio; otros valores solo se recortan.
func canonicalID(id string) string {
	id = strings.TrimSpace(id)
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}
