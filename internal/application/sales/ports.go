package sales

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta la creación de la venta (cabecera + líneas) en una sola transacción.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}

// ReceiptGenerator genera el ticket imprimible de una venta.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *dto.SaleResponse, menu entity.MenuConfig) ([]byte, error)
}
