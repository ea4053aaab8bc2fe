package repository

import (
	"context"

	"medibook/internal/domain/entity"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByEmail matches case-insensitively; returns nil when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

// SessionRepository tracks the single signed-in user.
type SessionRepository interface {
	// Current returns nil when nobody is signed in.
	Current(ctx context.Context) (*entity.User, error)
	SetCurrent(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context) error
}
