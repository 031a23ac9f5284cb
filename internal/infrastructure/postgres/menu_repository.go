package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo configuración del menú público: una sola fila (id = 1).
type MenuRepo struct {
	q Querier
}

func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// Get devuelve nil, nil si aún no se ha guardado configuración.
func (r *MenuRepo) Get(ctx context.Context) (*entity.MenuConfig, error) {
	var cfg entity.MenuConfig
	err := pgxscan.Get(ctx, r.q, &cfg, `
		SELECT restaurant_name, slogan, whatsapp, address, currency_symbol, primary_color, logo_url, updated_at
		FROM menu_config WHERE id = 1`)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu config: %w", err)
	}
	return &cfg, nil
}

func (r *MenuRepo) Upsert(ctx context.Context, cfg *entity.MenuConfig) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO menu_config (id, restaurant_name, slogan, whatsapp, address, currency_symbol, primary_color, logo_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			restaurant_name = EXCLUDED.restaurant_name,
			slogan          = EXCLUDED.slogan,
			whatsapp        = EXCLUDED.whatsapp,
			address         = EXCLUDED.address,
			currency_symbol = EXCLUDED.currency_symbol,
			primary_color   = EXCLUDED.primary_color,
			logo_url        = EXCLUDED.logo_url,
			updated_at      = EXCLUDED.updated_at`,
		cfg.RestaurantName, cfg.Slogan, cfg.WhatsApp, cfg.Address, cfg.CurrencySymbol,
		cfg.PrimaryColor, cfg.LogoURL, cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert menu config: %w", err)
	}
	return nil
}
