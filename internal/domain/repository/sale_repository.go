package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas. From/To nil = sin límite.
type SaleFilter struct {
	From   *time.Time
	To     *time.Time
	UserID string
	Limit  int
	Offset int
}

// SaleRepository define el puerto de persistencia para ventas con sus líneas congeladas.
type SaleRepository interface {
	// Create inserta cabecera y líneas; debe ejecutarse dentro de una transacción.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, int, error)
	Delete(ctx context.Context, id string) error
}
