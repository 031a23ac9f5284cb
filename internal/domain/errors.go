package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrProductUnavailable = errors.New("producto no disponible")
	ErrEmptyCart          = errors.New("la venta debe tener al menos un producto")
)

// ValidationError describe un campo inválido. Unwrap devuelve ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InsufficientStockError lleva el stock actual y la cantidad pedida. Unwrap devuelve ErrInsufficientStock.
type InsufficientStockError struct {
	ItemID    string
	Current   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s", e.Current.String(), e.Requested.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ProductError identifica el producto que abortó una venta.
// Err es ErrProductNotFound o ErrProductUnavailable.
type ProductError struct {
	ProductID string
	Name      string
	Err       error
}

func (e *ProductError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Err.Error(), e.Name, e.ProductID)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.ProductID)
}

func (e *ProductError) Unwrap() error { return e.Err }
