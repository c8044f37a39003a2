package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Alvarenga144/InventorySuite/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO usuarios (nombre, apellido, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, nombre, apellido, email, password_hash, created_at
		FROM usuarios
		WHERE id = $1
	`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, nombre, apellido, email, password_hash, created_at
		FROM usuarios
		WHERE email = $1
	`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return u, nil
}

func (s *Store) ListSellers(ctx context.Context) ([]user.Seller, error) {
	query := `
		SELECT id, nombre || ' ' || apellido AS nombre_completo, email
		FROM usuarios
		ORDER BY nombre_completo ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sellers: %w", err)
	}
	defer rows.Close()

	var sellers []user.Seller

	for rows.Next() {
		var sel user.Seller
		if err := rows.Scan(&sel.ID, &sel.DisplayName, &sel.Email); err != nil {
			return nil, fmt.Errorf("scanning seller: %w", err)
		}

		sellers = append(sellers, sel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seller rows: %w", err)
	}

	return sellers, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	if err := s.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &u, nil
}
