package user

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("user already exists")
)

// Repository abstracts persistence concerns from the domain layer.
// Implementations must normalize emails to lowercase and keep each call
// atomic with respect to concurrent callers: Update runs the whole
// load-mutate-persist cycle under the store's own lock, and Create fails
// with ErrAlreadyExists instead of relying on a separate existence check.
type Repository interface {
	Create(ctx context.Context, email string, rec Record) error
	GetByEmail(ctx context.Context, email string) (Record, error)
	Update(ctx context.Context, email string, fn func(*Record) error) (Record, error)
}
