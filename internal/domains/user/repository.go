package user

import "context"

// Repository is the user persistence contract. There is no
// self-registration: users are seeded at startup or created out of
// band.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u *User) error
}
