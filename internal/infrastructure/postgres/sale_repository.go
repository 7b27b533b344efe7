package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZachChoo/grocery-inventory/internal/domain"
	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
	"github.com/ZachChoo/grocery-inventory/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements the SaleRepository port over PostgreSQL.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository builds the persistence adapter for sales.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

const saleColumns = `id, product_id, sale_price, sale_start, sale_end, created_at, updated_at`

// Create persists a new sale. A sale cannot reference a nonexistent product.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, sale_price, sale_start, sale_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.ProductID, s.SalePrice, s.SaleStart, s.SaleEnd, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID fetches a sale by ID. Returns (nil, nil) when absent.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductID, &s.SalePrice, &s.SaleStart, &s.SaleEnd, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	return &s, nil
}

// List returns sales with pagination, newest first.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.SalePrice, &s.SaleStart, &s.SaleEnd,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete removes a sale by ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExpiringBetween returns every sale ending in [from, to] inclusive, joined to
// the owning product's name. Read-only; an empty window yields an empty slice.
func (r *SaleRepo) ExpiringBetween(ctx context.Context, from, to time.Time) ([]entity.ExpiringSale, error) {
	query := `
		SELECT p.name, s.sale_price, s.sale_end
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.sale_end >= $1 AND s.sale_end <= $2
		ORDER BY s.sale_end, p.name`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query expiring sales: %w", err)
	}
	defer rows.Close()
	var list []entity.ExpiringSale
	for rows.Next() {
		var es entity.ExpiringSale
		if err := rows.Scan(&es.ProductName, &es.SalePrice, &es.SaleEnd); err != nil {
			return nil, fmt.Errorf("scan expiring sale: %w", err)
		}
		list = append(list, es)
	}
	return list, rows.Err()
}
