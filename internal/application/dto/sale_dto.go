package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateOnly is the wire format for sale dates.
const DateOnly = "2006-01-02"

// CreateSaleRequest input to create a sale. Dates use YYYY-MM-DD.
type CreateSaleRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	SalePrice decimal.Decimal `json:"sale_price"`
	SaleStart string          `json:"sale_start" validate:"required"`
	SaleEnd   string          `json:"sale_end" validate:"required"`
}

// SaleResponse sale output.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	SalePrice decimal.Decimal `json:"sale_price"`
	SaleStart string          `json:"sale_start"`
	SaleEnd   string          `json:"sale_end"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SaleListResponse paginated sale list.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
