package repository

import (
	"context"

	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByUPC(ctx context.Context, upc string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	// Delete removes the product; its sales go with it via FK cascade.
	Delete(ctx context.Context, id string) error
}
