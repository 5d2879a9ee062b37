package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, like albums and own playlists.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, name, username, password string) error

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, username, password string) (string, error)
}
