package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves the
// service in any representation.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" xml:"id"`
	Username     string    `json:"username" db:"username" xml:"username" validate:"required,min=3,max=50"`
	Email        string    `json:"email" db:"email" xml:"email" validate:"required,email"`
	PasswordHash string    `json:"-" db:"password_hash" xml:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" xml:"created_at"`
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user; a taken username or email is ErrAlreadyExists
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)
}
