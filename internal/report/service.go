package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// SalesRows returns the flat aggregation rows, optionally filtered by
	// seller. A filter naming an unknown seller fails with ErrUnknownSeller.
	SalesRows(ctx context.Context, sellerID *uuid.UUID) ([]Row, error)
	SalesSummary(ctx context.Context, sellerID *uuid.UUID) (Summary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// saleKey is the natural key of a sale within the flat row set. Rows sharing
// the key collapse into one report entry.
type saleKey struct {
	SaleID      int64
	Date        int64 // unix nanos; time.Time is not comparable as a map key across monotonic clocks
	Total       string
	SellerID    uuid.UUID
	SellerName  string
	SellerEmail string
}

func keyOf(r Row) saleKey {
	return saleKey{
		SaleID:      r.SaleID,
		Date:        r.Date.UnixNano(),
		Total:       r.Total.String(),
		SellerID:    r.SellerID,
		SellerName:  r.SellerName,
		SellerEmail: r.SellerEmail,
	}
}

// Get builds the sales report: flat rows regrouped into sales with detail
// rows, plus the precomputed summary. Sales keep the order in which their key
// first appears in the row set; details keep row order.
func (s *Service) Get(ctx context.Context, sellerID *uuid.UUID) (*Report, error) {
	rows, err := s.repo.SalesRows(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("fetching report rows: %w", err)
	}

	summary, err := s.repo.SalesSummary(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("fetching report summary: %w", err)
	}

	report := &Report{
		Sales:   Group(rows),
		Summary: summary,
	}

	return report, nil
}

// Group regroups flat rows into nested sales, preserving first-appearance
// order of each sale key and the input order of its detail rows.
func Group(rows []Row) []Sale {
	sales := make([]Sale, 0)
	index := make(map[saleKey]int)

	for _, r := range rows {
		k := keyOf(r)

		i, ok := index[k]
		if !ok {
			sales = append(sales, Sale{
				SaleID:      r.SaleID,
				Date:        r.Date,
				Total:       r.Total,
				SellerID:    r.SellerID,
				SellerName:  r.SellerName,
				SellerEmail: r.SellerEmail,
			})
			i = len(sales) - 1
			index[k] = i
		}

		sales[i].Details = append(sales[i].Details, Detail{
			LineID:      r.LineID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			Tax:         r.Tax,
			LineTotal:   r.LineTotal,
		})
	}

	return sales
}
