// seed crea el superadmin inicial a partir de SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD / SEED_ADMIN_NAME.
// Con -demo también carga un menú y un inventario de ejemplo.
//
// Uso: go run ./cmd/seed [-demo]
package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

func main() {
	demo := flag.Bool("demo", false, "cargar productos e insumos de ejemplo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son obligatorios")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	userUC := usecase.NewUserUseCase(userRepo)
	created, err := userUC.EnsureSuperAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName)
	if err != nil {
		log.Fatal().Err(err).Msg("crear superadmin")
	}
	if created {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("superadmin creado")
	} else {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("superadmin ya existía")
	}

	if !*demo {
		return
	}
	admin, err := userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail)))
	if err != nil || admin == nil {
		log.Fatal().Err(err).Msg("leer superadmin")
	}
	if err := seedDemo(ctx, pool, admin.ID, log); err != nil {
		log.Fatal().Err(err).Msg("datos de ejemplo")
	}
	log.Info().Msg("datos de ejemplo cargados")
}

func seedDemo(ctx context.Context, pool *pgxpool.Pool, userID string, log *logger.Logger) error {
	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
	products := []dto.CreateProductRequest{
		{Name: "Café americano", Price: decimal.RequireFromString("2.50"), Category: "Bebidas"},
		{Name: "Jugo de naranja", Price: decimal.RequireFromString("3.00"), Category: "Bebidas"},
		{Name: "Lomo saltado", Price: decimal.RequireFromString("12.90"), Category: "Platos de fondo"},
		{Name: "Ají de gallina", Price: decimal.RequireFromString("10.50"), Category: "Platos de fondo"},
		{Name: "Suspiro limeño", Price: decimal.RequireFromString("4.00"), Category: "Postres"},
	}
	for _, p := range products {
		if _, err := productUC.Create(ctx, p); err != nil {
			return err
		}
	}
	log.Info().Int("productos", len(products)).Msg("menú de ejemplo")

	// La cantidad inicial queda registrada como entrada.
	itemUC := inventory.NewItemUseCase(postgres.NewTxRunner(pool), postgres.NewInventoryItemRepository(pool))
	items := []dto.CreateInventoryItemRequest{
		{Name: "Café en grano", Quantity: decimal.NewFromInt(4), Unit: entity.UnitKg, MinimumQuantity: decimal.NewFromInt(2), UnitCost: decimal.RequireFromString("18.00"), Category: entity.CategoryIngredient},
		{Name: "Naranjas", Quantity: decimal.NewFromInt(30), Unit: entity.UnitUnits, MinimumQuantity: decimal.NewFromInt(40), UnitCost: decimal.RequireFromString("0.35"), Category: entity.CategoryIngredient},
		{Name: "Lomo de res", Quantity: decimal.RequireFromString("5.5"), Unit: entity.UnitKg, MinimumQuantity: decimal.NewFromInt(4), UnitCost: decimal.RequireFromString("32.00"), Category: entity.CategoryIngredient},
		{Name: "Servilletas", Quantity: decimal.NewFromInt(500), Unit: entity.UnitUnits, MinimumQuantity: decimal.NewFromInt(200), UnitCost: decimal.RequireFromString("0.02"), Category: entity.CategorySupply},
		{Name: "Envases para llevar", Quantity: decimal.NewFromInt(60), Unit: entity.UnitUnits, MinimumQuantity: decimal.NewFromInt(50), UnitCost: decimal.RequireFromString("0.40"), Category: entity.CategoryPackaging},
	}
	for _, it := range items {
		if _, err := itemUC.Create(ctx, userID, it); err != nil {
			return err
		}
	}
	log.Info().Int("insumos", len(items)).Msg("inventario de ejemplo")
	return nil
}
