package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotFound is returned when a user with the given ID does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with an unknown email or wrong
	// password. Both cases map to the same error on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a rejected registration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListSellers(ctx context.Context) ([]Seller, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (p RegisterParams) validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return &ValidationError{Field: "nombre", Reason: "required"}
	}

	if strings.TrimSpace(p.LastName) == "" {
		return &ValidationError{Field: "apellido", Reason: "required"}
	}

	if _, err := mail.ParseAddress(p.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "invalid address"}
	}

	if len(p.Password) < 6 {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}

	return nil
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetUserByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return u, nil
}

// Login verifies the password for the account registered under email.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

// ListSellers returns every account as a potential seller, ordered by display name.
func (s *Service) ListSellers(ctx context.Context) ([]Seller, error) {
	return s.repo.ListSellers(ctx)
}
