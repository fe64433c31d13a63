package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, and author threads and comments.
type User struct {
	ID       string    // Prefixed identifier (user-<uuid>)
	Username string    // Login username (unique)
	Password string    // Bcrypt hashed password
	Fullname string    // Display name
	Date     time.Time // Account creation timestamp
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// Insert creates a new user account.
	// Backfills the generated ID and Date in the provided User upon success.
	Insert(ctx context.Context, u *User) error

	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)

	// VerifyAvailableUsername returns ErrConflict when the username is taken.
	VerifyAvailableUsername(ctx context.Context, username string) error
}

// RefreshTokenStore keeps issued refresh tokens until they expire or
// the user logs out. An unknown token is indistinguishable from an
// expired one, both resolve to ErrNotAuthenticated.
type RefreshTokenStore interface {
	Save(ctx context.Context, token, userID string) error
	Resolve(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// UserUsecase defines the business logic contract for user operations.
// Handles registration, authentication and token lifecycle.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, username, password, fullname string) (User, error)

	// Login verifies user credentials and issues an access/refresh token pair.
	// Returns ErrNotAuthenticated if the credentials don't match.
	Login(ctx context.Context, username, password string) (TokenPair, error)

	// RefreshToken exchanges a known refresh token for a fresh access token.
	RefreshToken(ctx context.Context, refreshToken string) (string, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
