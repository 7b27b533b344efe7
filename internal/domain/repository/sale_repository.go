package repository

import (
	"context"
	"time"

	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

// SaleRepository defines the persistence port for Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	Delete(ctx context.Context, id string) error
	// ExpiringBetween returns every sale whose end date falls in [from, to]
	// inclusive, each joined to the owning product's name. Empty result is a
	// value, not an error.
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]entity.ExpiringSale, error)
}
