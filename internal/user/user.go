package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can log in and record sales.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// DisplayName is the name shown for the user as a seller.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// Seller is the reduced view of a user exposed by seller listings.
type Seller struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
}
