package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Alvarenga144/InventorySuite/internal/report"
)

// Store runs the sales aggregation directly as SQL, replacing the stored
// procedure the schema originally shipped with.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) checkSeller(ctx context.Context, sellerID *uuid.UUID) error {
	if sellerID == nil {
		return nil
	}

	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM usuarios WHERE id = $1)`
	if err := s.db.QueryRowContext(ctx, query, *sellerID).Scan(&exists); err != nil {
		return fmt.Errorf("checking seller: %w", err)
	}

	if !exists {
		return report.ErrUnknownSeller
	}

	return nil
}

func (s *Store) SalesRows(ctx context.Context, sellerID *uuid.UUID) ([]report.Row, error) {
	if err := s.checkSeller(ctx, sellerID); err != nil {
		return nil, err
	}

	query := `
		SELECT
			v.idventa, v.fecha, v.total,
			u.id, u.nombre || ' ' || u.apellido, u.email,
			d.idde, d.idpro, p.producto, d.cantidad, d.precio, d.iva, d.total
		FROM ventas v
		JOIN usuarios u ON v.vendedor_id = u.id
		JOIN detalleventas d ON d.idventa = v.idventa
		JOIN productos p ON p.idpro = d.idpro
		WHERE ($1::uuid IS NULL OR v.vendedor_id = $1)
		ORDER BY v.fecha DESC, v.idventa, d.idde
	`

	rows, err := s.db.QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("querying report rows: %w", err)
	}
	defer rows.Close()

	var result []report.Row

	for rows.Next() {
		var r report.Row
		if err := rows.Scan(
			&r.SaleID, &r.Date, &r.Total,
			&r.SellerID, &r.SellerName, &r.SellerEmail,
			&r.LineID, &r.ProductID, &r.ProductName,
			&r.Quantity, &r.UnitPrice, &r.Tax, &r.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}

		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report rows: %w", err)
	}

	return result, nil
}

func (s *Store) SalesSummary(ctx context.Context, sellerID *uuid.UUID) (report.Summary, error) {
	if err := s.checkSeller(ctx, sellerID); err != nil {
		return report.Summary{}, err
	}

	query := `
		SELECT
			COUNT(DISTINCT v.idventa),
			COALESCE(SUM(d.total), 0),
			COALESCE(SUM(d.iva), 0),
			COALESCE(SUM(d.cantidad), 0)
		FROM ventas v
		JOIN detalleventas d ON d.idventa = v.idventa
		WHERE ($1::uuid IS NULL OR v.vendedor_id = $1)
	`

	var sum report.Summary

	err := s.db.QueryRowContext(ctx, query, sellerID).
		Scan(&sum.SaleCount, &sum.TotalAmount, &sum.TotalTax, &sum.ItemsSold)
	if err != nil {
		return report.Summary{}, fmt.Errorf("querying report summary: %w", err)
	}

	return sum, nil
}
