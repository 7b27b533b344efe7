package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ZachChoo/grocery-inventory/internal/application/dto"
	"github.com/ZachChoo/grocery-inventory/internal/domain"
	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
	"github.com/ZachChoo/grocery-inventory/internal/domain/repository"
)

// ProductUseCase CRUD use cases for products.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create creates a new product. UPC must be unique and price non-negative.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUPC(ctx, in.UPC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUPCAlreadyExists
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		UPC:              in.UPC,
		Name:             in.Name,
		Quantity:         in.Quantity,
		Price:            in.Price,
		ReportCode:       in.ReportCode,
		ReorderThreshold: in.ReorderThreshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID fetches a product by ID. Returns (nil, nil) when absent.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update applies a partial update. UPC is immutable; price stays non-negative.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ReportCode != nil {
		product.ReportCode = *in.ReportCode
	}
	if in.ReorderThreshold != nil {
		product.ReorderThreshold = *in.ReorderThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns products with pagination.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock returns products at or below their reorder threshold.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete removes a product; its sales cascade away with it.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		UPC:              p.UPC,
		Name:             p.Name,
		Quantity:         p.Quantity,
		Price:            p.Price,
		ReportCode:       p.ReportCode,
		ReorderThreshold: p.ReorderThreshold,
		LowStock:         p.LowStock(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
