package notification

import (
	"context"
	"time"

	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

// SaleScanner queries the catalog store for sales ending inside a window.
// Satisfied by postgres.SaleRepo.
type SaleScanner interface {
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]entity.ExpiringSale, error)
}

// RecipientDirectory queries the directory store for eligible recipients.
// Satisfied by postgres.UserRepo.
type RecipientDirectory interface {
	ManagersWithEmail(ctx context.Context) ([]*entity.User, error)
}

// Mailer hands a formatted report to the external mail transport.
// Satisfied by smtp.Mailer.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, plain, html string) error
}
