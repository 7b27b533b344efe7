package repository

import (
	"context"

	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

// UserRepository defines the persistence port for User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
	// ManagersWithEmail returns users eligible for the expiring-sales digest:
	// role = manager and a non-empty email.
	ManagersWithEmail(ctx context.Context) ([]*entity.User, error)
}
