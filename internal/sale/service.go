package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInfo is the slice of the catalog the sale engine needs: identity,
// display name and the price captured onto new lines.
type ProductInfo struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	// GetActiveProducts returns info for the requested IDs, silently omitting
	// any that do not exist or are inactive.
	GetActiveProducts(ctx context.Context, ids []int64) ([]ProductInfo, error)

	Begin(ctx context.Context) (Tx, error)

	GetSale(ctx context.Context, id int64) (*Sale, error)
	ListSales(ctx context.Context) ([]*Sale, error)
}

// Tx covers the writes of one sale. All three inserts/updates happen on the
// same database transaction; nothing is visible until Commit.
type Tx interface {
	InsertSale(ctx context.Context, s *Sale) error
	InsertLine(ctx context.Context, saleID int64, l *Line) error
	SetSaleTotal(ctx context.Context, saleID int64, total decimal.Decimal) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo    Repository
	taxRate decimal.Decimal
}

// NewService builds a sale service. taxRatePercent is the configured tax
// percentage (13 means 13%).
func NewService(repo Repository, taxRatePercent int64) *Service {
	return &Service{
		repo:    repo,
		taxRate: decimal.NewFromInt(taxRatePercent).Div(decimal.NewFromInt(100)),
	}
}

// CreateSale validates the requested lines, prices them against the catalog
// and persists the whole aggregate atomically.
//
// Validation happens entirely before the first write, so a rejected request
// never leaves partial state. Monetary math uses 2-digit fixed-point
// decimals; per-line tax is rounded half away from zero.
func (s *Service) CreateSale(ctx context.Context, sellerID uuid.UUID, lines []LineInput) (*Sale, error) {
	if sellerID == uuid.Nil {
		return nil, ErrNoSeller
	}

	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	products, err := s.resolveProducts(ctx, lines)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning sale tx: %w", err)
	}
	defer tx.Rollback()

	date := time.Now().UTC()

	header := &Sale{Date: date, SellerID: sellerID, Total: decimal.Zero}
	if err := tx.InsertSale(ctx, header); err != nil {
		return nil, fmt.Errorf("inserting sale: %w", err)
	}

	total := decimal.Zero

	for _, in := range lines {
		p := products[in.ProductID]

		subtotal := p.Price.Mul(decimal.NewFromInt(in.Quantity))
		tax := subtotal.Mul(s.taxRate).Round(2)
		lineTotal := subtotal.Add(tax)

		line := &Line{
			Date:        date,
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    in.Quantity,
			UnitPrice:   p.Price,
			Tax:         tax,
			Total:       lineTotal,
		}

		if err := tx.InsertLine(ctx, header.ID, line); err != nil {
			return nil, fmt.Errorf("inserting sale line: %w", err)
		}

		total = total.Add(lineTotal)
	}

	if err := tx.SetSaleTotal(ctx, header.ID, total); err != nil {
		return nil, fmt.Errorf("setting sale total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}

	created, err := s.repo.GetSale(ctx, header.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading sale: %w", err)
	}

	return created, nil
}

// resolveProducts fetches the distinct referenced products and fails with the
// exact list of IDs that are unknown or inactive.
func (s *Service) resolveProducts(ctx context.Context, lines []LineInput) (map[int64]ProductInfo, error) {
	seen := make(map[int64]struct{}, len(lines))
	distinct := make([]int64, 0, len(lines))

	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}

		seen[l.ProductID] = struct{}{}
		distinct = append(distinct, l.ProductID)
	}

	infos, err := s.repo.GetActiveProducts(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("resolving products: %w", err)
	}

	products := make(map[int64]ProductInfo, len(infos))
	for _, p := range infos {
		products[p.ID] = p
	}

	if len(products) != len(distinct) {
		var missing []int64

		for _, id := range distinct {
			if _, ok := products[id]; !ok {
				missing = append(missing, id)
			}
		}

		return nil, &UnavailableProductsError{IDs: missing}
	}

	return products, nil
}

// Get returns the full aggregate with resolved product and seller names.
func (s *Service) Get(ctx context.Context, id int64) (*Sale, error) {
	return s.repo.GetSale(ctx, id)
}

// List returns sale headers without line detail, newest first.
func (s *Service) List(ctx context.Context) ([]*Sale, error) {
	return s.repo.ListSales(ctx)
}
