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

// SaleUseCase CRUD use cases for sales.
type SaleUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales, products: products}
}

// Create creates a sale. The product must exist, the price must be
// non-negative and sale_end must not precede sale_start.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	start, err := time.ParseInLocation(dto.DateOnly, in.SaleStart, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.ParseInLocation(dto.DateOnly, in.SaleEnd, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		SalePrice: in.SalePrice,
		SaleStart: start,
		SaleEnd:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID fetches a sale by ID. Returns (nil, nil) when absent.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List returns sales with pagination.
func (uc *SaleUseCase) List(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.sales.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a sale by ID.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.sales.Delete(ctx, id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		SalePrice: s.SalePrice,
		SaleStart: s.SaleStart.Format(dto.DateOnly),
		SaleEnd:   s.SaleEnd.Format(dto.DateOnly),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
