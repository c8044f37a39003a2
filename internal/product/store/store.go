package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Alvarenga144/InventorySuite/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectProductColumns = `idpro, producto, precio, activo, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	if err := s.Scan(
		&p.ID, &p.Name, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO productos (producto, precio, activo, created_at)
		VALUES ($1, $2, TRUE, NOW())
		RETURNING idpro, activo, created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.Name, p.Price).
		Scan(&p.ID, &p.Active, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM productos WHERE idpro = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListActiveProducts(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM productos
		WHERE activo
		ORDER BY producto ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE productos
		SET producto = $1, precio = $2, updated_at = NOW()
		WHERE idpro = $3
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query, p.Name, p.Price, p.ID).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product.ErrNotFound
		}

		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

func (s *Store) SoftDeleteProduct(ctx context.Context, id int64) error {
	query := `
		UPDATE productos
		SET activo = FALSE, updated_at = NOW()
		WHERE idpro = $1
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *Store) HasSaleReferences(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM detalleventas WHERE idpro = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking sale references: %w", err)
	}

	return exists, nil
}
