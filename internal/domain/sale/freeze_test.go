package sale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func catalog() map[string]*entity.Product {
	return map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Lomo saltado", Price: decimal.RequireFromString("10.00"), Available: true},
		"p2": {ID: "p2", Name: "Chicha morada", Price: decimal.RequireFromString("4.50"), Available: true},
		"p3": {ID: "p3", Name: "Ceviche", Price: decimal.RequireFromString("18"), Available: false},
	}
}

func TestValidateCart(t *testing.T) {
	assert.ErrorIs(t, ValidateCart(nil, entity.PaymentCash), domain.ErrEmptyCart)
	assert.ErrorIs(t, ValidateCart([]CartLine{{ProductID: "p1", Quantity: 0}}, entity.PaymentCash), domain.ErrInvalidInput)
	assert.ErrorIs(t, ValidateCart([]CartLine{{ProductID: "", Quantity: 1}}, entity.PaymentCash), domain.ErrInvalidInput)
	assert.ErrorIs(t, ValidateCart([]CartLine{{ProductID: "p1", Quantity: 1}}, "cheque"), domain.ErrInvalidInput)
	assert.NoError(t, ValidateCart([]CartLine{{ProductID: "p1", Quantity: 1}}, entity.PaymentWallet))
}

func TestFreezeItems_CopiaNombreYPrecio(t *testing.T) {
	products := catalog()
	items, total, err := FreezeItems([]CartLine{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}, products)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Lomo saltado", items[0].ProductName)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("10")))
	assert.True(t, items[0].Subtotal.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, 1, items[0].Position)
	assert.Equal(t, 2, items[1].Position)
	assert.True(t, total.Equal(decimal.RequireFromString("24.50")))

	// Cambiar el catálogo no altera lo congelado.
	products["p1"].Name = "Lomo fino"
	products["p1"].Price = decimal.RequireFromString("12")
	assert.Equal(t, "Lomo saltado", items[0].ProductName)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("10")))
}

func TestFreezeItems_ProductoInexistente(t *testing.T) {
	_, _, err := FreezeItems([]CartLine{{ProductID: "p1", Quantity: 1}, {ProductID: "zz", Quantity: 1}, {ProductID: "yy", Quantity: 1}}, catalog())
	var pErr *domain.ProductError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "zz", pErr.ProductID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFreezeItems_ProductoNoDisponible(t *testing.T) {
	_, _, err := FreezeItems([]CartLine{{ProductID: "p3", Quantity: 1}}, catalog())
	var pErr *domain.ProductError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "Ceviche", pErr.Name)
	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}
