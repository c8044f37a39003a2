package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Alvarenga144/InventorySuite/internal/sale"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetActiveProducts(ctx context.Context, ids []int64) ([]sale.ProductInfo, error) {
	query := `
		SELECT idpro, producto, precio
		FROM productos
		WHERE idpro = ANY($1) AND activo
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var infos []sale.ProductInfo

	for rows.Next() {
		var p sale.ProductInfo
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		infos = append(infos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return infos, nil
}

type saleTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (sale.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return &saleTx{tx: tx}, nil
}

func (t *saleTx) Commit() error   { return t.tx.Commit() }
func (t *saleTx) Rollback() error { return t.tx.Rollback() }

func (t *saleTx) InsertSale(ctx context.Context, s *sale.Sale) error {
	query := `
		INSERT INTO ventas (fecha, vendedor_id, total, created_at)
		VALUES ($1, $2, 0, $1)
		RETURNING idventa
	`

	if err := t.tx.QueryRowContext(ctx, query, s.Date, s.SellerID).Scan(&s.ID); err != nil {
		return fmt.Errorf("inserting sale header: %w", err)
	}

	return nil
}

func (t *saleTx) InsertLine(ctx context.Context, saleID int64, l *sale.Line) error {
	query := `
		INSERT INTO detalleventas (fecha, idventa, idpro, cantidad, precio, iva, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING idde
	`

	err := t.tx.QueryRowContext(ctx, query,
		l.Date,
		saleID,
		l.ProductID,
		l.Quantity,
		l.UnitPrice,
		l.Tax,
		l.Total,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("inserting sale line: %w", err)
	}

	return nil
}

func (t *saleTx) SetSaleTotal(ctx context.Context, saleID int64, total decimal.Decimal) error {
	query := `UPDATE ventas SET total = $1 WHERE idventa = $2`

	if _, err := t.tx.ExecContext(ctx, query, total, saleID); err != nil {
		return fmt.Errorf("setting sale total: %w", err)
	}

	return nil
}

const selectSaleHeader = `
	v.idventa, v.fecha, v.vendedor_id, u.nombre || ' ' || u.apellido, v.total
`

func (s *Store) GetSale(ctx context.Context, id int64) (*sale.Sale, error) {
	headerQuery := `SELECT ` + selectSaleHeader + `
		FROM ventas v
		JOIN usuarios u ON v.vendedor_id = u.id
		WHERE v.idventa = $1`

	var sl sale.Sale

	err := s.db.QueryRowContext(ctx, headerQuery, id).
		Scan(&sl.ID, &sl.Date, &sl.SellerID, &sl.SellerName, &sl.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	linesQuery := `
		SELECT d.idde, d.fecha, d.idpro, p.producto, d.cantidad, d.precio, d.iva, d.total
		FROM detalleventas d
		JOIN productos p ON d.idpro = p.idpro
		WHERE d.idventa = $1
		ORDER BY d.idde ASC
	`

	rows, err := s.db.QueryContext(ctx, linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("getting sale lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l sale.Line
		if err := rows.Scan(
			&l.ID, &l.Date, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &l.Tax, &l.Total,
		); err != nil {
			return nil, fmt.Errorf("scanning sale line: %w", err)
		}

		sl.Lines = append(sl.Lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale lines: %w", err)
	}

	return &sl, nil
}

func (s *Store) ListSales(ctx context.Context) ([]*sale.Sale, error) {
	query := `SELECT ` + selectSaleHeader + `
		FROM ventas v
		JOIN usuarios u ON v.vendedor_id = u.id
		ORDER BY v.fecha DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale

	for rows.Next() {
		var sl sale.Sale
		if err := rows.Scan(&sl.ID, &sl.Date, &sl.SellerID, &sl.SellerName, &sl.Total); err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, &sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale rows: %w", err)
	}

	return sales, nil
}
