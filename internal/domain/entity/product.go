package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents one grocery item tracked by the store.
// UPC is unique across all products; Price is never negative.
type Product struct {
	ID               string
	UPC              string // external barcode, unique
	Name             string
	Quantity         int
	Price            decimal.Decimal
	ReportCode       int
	ReorderThreshold int // quantity at or below this marks the product low-stock
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LowStock reports whether on-hand quantity has fallen to the reorder threshold.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.ReorderThreshold
}
