package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a time-bounded discount on a product. SaleStart and SaleEnd are
// calendar dates (midnight UTC); SaleEnd is never before SaleStart. Deleting
// the owning product deletes its sales (FK cascade in the store).
type Sale struct {
	ID        string
	ProductID string
	SalePrice decimal.Decimal
	SaleStart time.Time
	SaleEnd   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
