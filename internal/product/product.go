package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxNameLength mirrors the productos.producto column size.
const MaxNameLength = 150

// Product is a catalog entry. Deleting a product only flips Active off; rows
// are never removed so historical sale lines keep a valid reference.
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
