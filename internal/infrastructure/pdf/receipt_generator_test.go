package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func sampleSale() *dto.SaleResponse {
	return &dto.SaleResponse{
		ID: "a1b2c3d4-0000-4000-8000-000000000001",
		Items: []dto.SaleItemResponse{
			{ProductID: "p1", ProductName: "Lomo saltado", Quantity: 2, UnitPrice: decimal.RequireFromString("28.50"), Subtotal: decimal.RequireFromString("57.00")},
			{ProductID: "p2", ProductName: "Chicha morada", Quantity: 1, UnitPrice: decimal.RequireFromString("6.00"), Subtotal: decimal.RequireFromString("6.00")},
		},
		Total:         decimal.RequireFromString("63.00"),
		PaymentMethod: entity.PaymentCash,
		User:          &dto.UserSummary{ID: "u1", Name: "Ana"},
		Customer:      "Mesa 4",
		CreatedAt:     time.Date(2026, 10, 17, 13, 30, 0, 0, time.UTC),
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	g := NewReceiptGenerator(language.English)
	menu := entity.DefaultMenuConfig()
	menu.WhatsApp = "+51 999 888 777"

	out, err := g.GenerateReceiptPDF(context.Background(), sampleSale(), menu)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateReceiptPDF_SinWhatsApp(t *testing.T) {
	g := NewReceiptGenerator(language.English)
	out, err := g.GenerateReceiptPDF(context.Background(), sampleSale(), entity.DefaultMenuConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateReceiptPDF_VentaNula(t *testing.T) {
	g := NewReceiptGenerator(language.English)
	_, err := g.GenerateReceiptPDF(context.Background(), nil, entity.DefaultMenuConfig())
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	g := NewReceiptGenerator(language.English)
	assert.Equal(t, "S/ 1,234.50", g.money("S/", decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", g.money("", decimal.Zero))
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/51999888777", whatsAppURL("+51 999-888-777"))
}
