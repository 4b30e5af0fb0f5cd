package repository

import (
	"context"

	"resumeapi/internal/model"
)

// UserRepository persists accounts.
type UserRepository interface {
	// Create stores a user; ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}
