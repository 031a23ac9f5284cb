package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un plato o bebida del menú.
// Se puede editar libremente; las ventas guardan su propia copia de nombre y precio.
type Product struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Category    string          `db:"category"`
	Available   bool            `db:"available"`
	ImageURL    string          `db:"image_url"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
