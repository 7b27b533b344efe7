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

func validProduct() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		UPC:              "012345678905",
		Name:             "Widget",
		Quantity:         10,
		Price:            decimal.NewFromFloat(7.99),
		ReorderThreshold: 3,
	}
}

func TestProductCreate_OK(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(context.Background(), validProduct())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Widget", out.Name)
	assert.False(t, out.LowStock)
}

func TestProductCreate_DuplicateUPC(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(context.Background(), validProduct())
	require.NoError(t, err)

	in := validProduct()
	in.Name = "Widget clone"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUPCAlreadyExists)
}

func TestProductCreate_NegativePrice(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	in := validProduct()
	in.Price = decimal.NewFromFloat(-1)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Partial(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	created, err := uc.Create(context.Background(), validProduct())
	require.NoError(t, err)

	newQty := 2
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Quantity: &newQty})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.Quantity)
	assert.Equal(t, "Widget", out.Name, "untouched fields keep their values")
	assert.True(t, out.LowStock, "quantity at the threshold flags low stock")
}

func TestProductUpdate_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Update(context.Background(), "missing", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductListLowStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	low := validProduct()
	low.Quantity = 1
	_, err := uc.Create(context.Background(), low)
	require.NoError(t, err)

	ok := validProduct()
	ok.UPC = "036000291452"
	ok.Name = "Gizmo"
	_, err = uc.Create(context.Background(), ok)
	require.NoError(t, err)

	items, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}
