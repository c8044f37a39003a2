package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a product with the given ID does not exist.
	ErrNotFound = errors.New("product not found")

	// ErrInUse is returned when deleting a product that sale lines reference.
	ErrInUse = errors.New("product has associated sales")

	ErrNameRequired = errors.New("product name is required")
	ErrNameTooLong  = errors.New("product name exceeds 150 characters")
	ErrPriceInvalid = errors.New("price must be greater than zero")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListActiveProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	SoftDeleteProduct(ctx context.Context, id int64) error
	HasSaleReferences(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(name string, price decimal.Decimal) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return ErrNameRequired
	}

	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}

	if !price.IsPositive() {
		return ErrPriceInvalid
	}

	return nil
}

// List returns active products ordered by name.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListActiveProducts(ctx)
}

// Get returns the product regardless of its active flag.
func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string, price decimal.Decimal) (*Product, error) {
	if err := validate(name, price); err != nil {
		return nil, err
	}

	p := &Product{
		Name:   strings.TrimSpace(name),
		Price:  price,
		Active: true,
	}

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return p, nil
}

// Update changes name and price. The active flag is untouched; only Delete
// flips it.
func (s *Service) Update(ctx context.Context, id int64, name string, price decimal.Decimal) (*Product, error) {
	if err := validate(name, price); err != nil {
		return nil, err
	}

	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(name)
	p.Price = price

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	return p, nil
}

// Delete soft-deletes the product. It fails with ErrInUse while any sale line
// references the product.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetProduct(ctx, id); err != nil {
		return err
	}

	referenced, err := s.repo.HasSaleReferences(ctx, id)
	if err != nil {
		return fmt.Errorf("checking sale references: %w", err)
	}

	if referenced {
		return ErrInUse
	}

	if err := s.repo.SoftDeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}
