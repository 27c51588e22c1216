package repository

import (
	"context"

	"ot-inventory/internal/auth/domain/model"
)

// UserRepository defines the interface for credential storage.
// The backing store must enforce a uniqueness constraint on username.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}
