package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product.
type CreateProductRequest struct {
	UPC              string          `json:"upc" validate:"required,min=1,max=100"`
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Quantity         int             `json:"quantity" validate:"min=0"`
	Price            decimal.Decimal `json:"price"`
	ReportCode       int             `json:"report_code"`
	ReorderThreshold int             `json:"reorder_threshold" validate:"min=0"`
}

// UpdateProductRequest input for a partial product update.
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Quantity         *int             `json:"quantity"`
	Price            *decimal.Decimal `json:"price"`
	ReportCode       *int             `json:"report_code"`
	ReorderThreshold *int             `json:"reorder_threshold"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID               string          `json:"id"`
	UPC              string          `json:"upc"`
	Name             string          `json:"name"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	ReportCode       int             `json:"report_code"`
	ReorderThreshold int             `json:"reorder_threshold"`
	LowStock         bool            `json:"low_stock"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product list.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
