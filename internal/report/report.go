package report

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUnknownSeller is returned when the report filter references a seller id
// that does not exist.
var ErrUnknownSeller = errors.New("seller does not exist")

// Row is one flat line of the sales aggregation: sale header fields repeated
// per detail row, exactly as the aggregation query emits them.
type Row struct {
	SaleID      int64
	Date        time.Time
	Total       decimal.Decimal
	SellerID    uuid.UUID
	SellerName  string
	SellerEmail string
	LineID      int64
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Tax         decimal.Decimal
	LineTotal   decimal.Decimal
}

// Summary aggregates the filtered sales as a whole.
type Summary struct {
	SaleCount   int64
	TotalAmount decimal.Decimal
	TotalTax    decimal.Decimal
	ItemsSold   int64
}

// Sale is one regrouped sale in the report, with its detail rows.
type Sale struct {
	SaleID      int64
	Date        time.Time
	Total       decimal.Decimal
	SellerID    uuid.UUID
	SellerName  string
	SellerEmail string
	Details     []Detail
}

// Detail is one line of a regrouped sale.
type Detail struct {
	LineID      int64
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Tax         decimal.Decimal
	LineTotal   decimal.Decimal
}

// Report is the nested structure handed to presentation and export.
type Report struct {
	Sales   []Sale
	Summary Summary
}
