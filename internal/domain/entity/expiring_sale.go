package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpiringSale is a read-only projection of a sale joined to its product's
// name, built per scan for the notification report and discarded after
// dispatch. It is never persisted.
type ExpiringSale struct {
	ProductName string
	SalePrice   decimal.Decimal
	SaleEnd     time.Time
}
