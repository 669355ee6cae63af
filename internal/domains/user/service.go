package user

import "context"

// Service is the authentication business logic.
type Service interface {
	// Login verifies the credentials and returns the matching user,
	// or ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*UserDTO, error)

	// EnsureDefaultAdmin seeds the default admin account when the
	// users table is empty. Called once at startup.
	EnsureDefaultAdmin(ctx context.Context) error
}
