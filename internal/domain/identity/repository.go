package identity

import "context"

// UserRepository defines persistence operations for user accounts
type UserRepository interface {
	// FindByEmail returns the user with the given email,
	// or shared.ErrNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new user row.
	Create(ctx context.Context, user *User) error
}
