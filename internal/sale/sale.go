package sale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a sale with the given ID does not exist.
	ErrNotFound = errors.New("sale not found")

	// ErrNoSeller is returned when CreateSale is called without a resolved
	// seller identity.
	ErrNoSeller = errors.New("seller identity required")

	// ErrNoLines is returned for a sale request with an empty line list.
	ErrNoLines = errors.New("at least one line required")

	// ErrInvalidQuantity is returned when any line quantity is below 1.
	ErrInvalidQuantity = errors.New("quantity must be > 0")
)

// UnavailableProductsError lists the requested product IDs that either do not
// exist or are inactive, in the order they first appeared in the request.
type UnavailableProductsError struct {
	IDs []int64
}

func (e *UnavailableProductsError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	return fmt.Sprintf("products do not exist or are inactive: %s", strings.Join(ids, ", "))
}

// Sale is a committed sales transaction. Header and lines are immutable once
// created; the only write path is CreateSale.
type Sale struct {
	ID         int64
	Date       time.Time
	SellerID   uuid.UUID
	SellerName string
	Total      decimal.Decimal
	Lines      []Line
}

// Line is one product entry within a sale. UnitPrice is captured from the
// catalog at creation time, so later price changes never alter the sale.
type Line struct {
	ID          int64
	Date        time.Time
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// LineInput is a requested (product, quantity) pair.
type LineInput struct {
	ProductID int64
	Quantity  int64
}
