package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ReceiptUseCase genera el ticket PDF de una venta ya registrada.
type ReceiptUseCase struct {
	sales     *SaleUseCase
	menuRepo  repository.MenuRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(sales *SaleUseCase, menuRepo repository.MenuRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{sales: sales, menuRepo: menuRepo, generator: generator}
}

// DownloadReceipt devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	s, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	menu := entity.DefaultMenuConfig()
	stored, err := uc.menuRepo.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener configuración: %w", err)
	}
	if stored != nil {
		menu = *stored
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, s, menu)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: generación fallida: %w", err)
	}
	short := s.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return pdfBytes, fmt.Sprintf("ticket_%s.pdf", short), nil
}
