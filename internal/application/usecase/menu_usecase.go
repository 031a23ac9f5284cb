package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// MenuUseCase arma el menú digital público y guarda su configuración.
type MenuUseCase struct {
	menuRepo    repository.MenuRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(menuRepo repository.MenuRepository, productRepo repository.ProductRepository) *MenuUseCase {
	return &MenuUseCase{menuRepo: menuRepo, productRepo: productRepo, now: time.Now}
}

// GetMenu devuelve la configuración y los productos disponibles agrupados por categoría (orden alfabético).
func (uc *MenuUseCase) GetMenu(ctx context.Context) (*dto.MenuResponse, error) {
	cfg, err := uc.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{AvailableOnly: true})
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]dto.ProductResponse)
	for _, p := range products {
		cat := p.Category
		if cat == "" {
			cat = "Otros"
		}
		groups[cat] = append(groups[cat], *toProductResponse(p))
	}
	names := make([]string, 0, len(groups))
	for k := range groups {
		names = append(names, k)
	}
	sort.Strings(names)
	categories := make([]dto.MenuCategory, 0, len(names))
	for _, n := range names {
		categories = append(categories, dto.MenuCategory{Category: n, Products: groups[n]})
	}
	return &dto.MenuResponse{Config: *cfg, Categories: categories}, nil
}

// GetConfig devuelve la configuración guardada o la de por defecto.
func (uc *MenuUseCase) GetConfig(ctx context.Context) (*dto.MenuConfigResponse, error) {
	stored, err := uc.menuRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg := entity.DefaultMenuConfig()
	if stored != nil {
		cfg = *stored
	}
	return toMenuConfigResponse(cfg), nil
}

// UpdateConfig reemplaza la configuración del menú.
func (uc *MenuUseCase) UpdateConfig(ctx context.Context, in dto.MenuConfigRequest) (*dto.MenuConfigResponse, error) {
	cfg := entity.MenuConfig{
		RestaurantName: strings.TrimSpace(in.RestaurantName),
		Slogan:         in.Slogan,
		WhatsApp:       in.WhatsApp,
		Address:        in.Address,
		CurrencySymbol: in.CurrencySymbol,
		PrimaryColor:   in.PrimaryColor,
		LogoURL:        in.LogoURL,
		UpdatedAt:      uc.now(),
	}
	if err := uc.menuRepo.Upsert(ctx, &cfg); err != nil {
		return nil, err
	}
	return toMenuConfigResponse(cfg), nil
}

func toMenuConfigResponse(c entity.MenuConfig) *dto.MenuConfigResponse {
	return &dto.MenuConfigResponse{
		RestaurantName: c.RestaurantName,
		Slogan:         c.Slogan,
		WhatsApp:       c.WhatsApp,
		Address:        c.Address,
		CurrencySymbol: c.CurrencySymbol,
		PrimaryColor:   c.PrimaryColor,
		LogoURL:        c.LogoURL,
		UpdatedAt:      c.UpdatedAt,
	}
}
