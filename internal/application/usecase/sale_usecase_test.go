package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZachChoo/grocery-inventory/internal/application/dto"
	"github.com/ZachChoo/grocery-inventory/internal/application/usecase"
	"github.com/ZachChoo/grocery-inventory/internal/domain"
)

func setupSaleUC(t *testing.T) (*usecase.SaleUseCase, string) {
	t.Helper()
	products := newMemProductRepo()
	productUC := usecase.NewProductUseCase(products)
	created, err := productUC.Create(context.Background(), validProduct())
	require.NoError(t, err)
	return usecase.NewSaleUseCase(newMemSaleRepo(), products), created.ID
}

func TestSaleCreate_OK(t *testing.T) {
	uc, productID := setupSaleUC(t)

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: productID,
		SalePrice: decimal.NewFromFloat(5.99),
		SaleStart: "2025-06-01",
		SaleEnd:   "2025-06-30",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, productID, out.ProductID)
	assert.Equal(t, "2025-06-30", out.SaleEnd)
}

func TestSaleCreate_EndBeforeStart(t *testing.T) {
	uc, productID := setupSaleUC(t)

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: productID,
		SalePrice: decimal.NewFromFloat(5.99),
		SaleStart: "2025-06-30",
		SaleEnd:   "2025-06-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleCreate_SingleDaySaleAllowed(t *testing.T) {
	uc, productID := setupSaleUC(t)

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: productID,
		SalePrice: decimal.NewFromFloat(5.99),
		SaleStart: "2025-06-01",
		SaleEnd:   "2025-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, out.SaleStart, out.SaleEnd)
}

func TestSaleCreate_UnknownProduct(t *testing.T) {
	uc, _ := setupSaleUC(t)

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "missing",
		SalePrice: decimal.NewFromFloat(5.99),
		SaleStart: "2025-06-01",
		SaleEnd:   "2025-06-30",
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSaleCreate_BadDate(t *testing.T) {
	uc, productID := setupSaleUC(t)

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: productID,
		SalePrice: decimal.NewFromFloat(5.99),
		SaleStart: "June 1st",
		SaleEnd:   "2025-06-30",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
