package unit

import (
	"context"
	"testing"

	"farmmarket/internal/domain/model"
	repo "farmmarket/internal/repository"
	"farmmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListByIDs(ctx context.Context, productIDs []int64) ([]model.Product, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProductRepoMock) ListByFarmerID(ctx context.Context, farmerID int64) ([]model.Product, error) {
	args := m.Called(ctx, farmerID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type ProductFarmerRepoMock struct{ mock.Mock }

func (m *ProductFarmerRepoMock) Create(ctx context.Context, f model.Farmer) (int64, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProductFarmerRepoMock) FindByID(ctx context.Context, farmerID int64) (model.Farmer, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProductFarmerRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Farmer, error) {
	args := m.Called(ctx, userID)
	f, _ := args.Get(0).(model.Farmer)
	return f, args.Error(1)
}

func (m *ProductFarmerRepoMock) ListByIDs(ctx context.Context, farmerIDs []int64) ([]model.Farmer, error) {
	panic("not used in ProductUsecase tests")
}

func newProductUsecase(t *testing.T) (*usecase.ProductUsecase, *ProductRepoMock, *ProductFarmerRepoMock) {
	t.Helper()
	products := new(ProductRepoMock)
	farmers := new(ProductFarmerRepoMock)
	return usecase.NewProductUsecase(products, farmers), products, farmers
}

func TestProductUsecase_ListPublicProducts_CategoryIsUppercased(t *testing.T) {
	ctx := context.Background()
	uc, products, _ := newProductUsecase(t)

	products.On("ListPublic", mock.Anything, repo.ProductListQuery{Page: 1, Limit: 20, Category: "FRUITS"}).
		Return([]model.Product{{ID: 1, Name: "Mangoes"}}, int64(1), nil)

	out, err := uc.ListPublicProducts(ctx, usecase.ListProductsInput{Page: 1, Limit: 20, Category: "fruits"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
}

func TestProductUsecase_ListPublicProducts_InvalidCategory(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newProductUsecase(t)

	_, err := uc.ListPublicProducts(ctx, usecase.ListProductsInput{Page: 1, Limit: 20, Category: "weapons"})
	assertErrContains(t, err, "invalid category")
}

func TestProductUsecase_ListPublicProducts_InvalidLimit(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newProductUsecase(t)

	_, err := uc.ListPublicProducts(ctx, usecase.ListProductsInput{Page: 1, Limit: 1000})
	assertErrContains(t, err, "invalid limit")
}

func TestProductUsecase_GetProductDetail_HiddenWhenUnavailable(t *testing.T) {
	ctx := context.Background()
	uc, products, _ := newProductUsecase(t)

	//販売停止中の商品は存在しない扱い
	products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, IsAvailable: false}, nil)

	_, err := uc.GetProductDetail(ctx, 2)
	assertErrContains(t, err, "product not found")
}

func TestProductUsecase_CreateFarmerProduct_Success(t *testing.T) {
	ctx := context.Background()
	uc, products, farmers := newProductUsecase(t)

	farmers.On("FindByUserID", mock.Anything, int64(30)).Return(model.Farmer{ID: 3, UserID: 30}, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.FarmerID == 3 && p.Name == "Tomatoes" && p.Category == model.CategoryVegetables
	})).Return(model.Product{ID: 5, FarmerID: 3, Name: "Tomatoes", Category: model.CategoryVegetables}, nil)

	p, err := uc.CreateFarmerProduct(ctx, 30, usecase.FarmerProductInput{
		Name:        "Tomatoes",
		Price:       40,
		Stock:       100,
		Category:    "vegetables",
		IsAvailable: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
}

func TestProductUsecase_UpdateFarmerProduct_OtherFarmersProductLooksMissing(t *testing.T) {
	ctx := context.Background()
	uc, products, farmers := newProductUsecase(t)

	farmers.On("FindByUserID", mock.Anything, int64(30)).Return(model.Farmer{ID: 3}, nil)
	products.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, FarmerID: 99}, nil)

	err := uc.UpdateFarmerProduct(ctx, 30, 5, usecase.FarmerProductInput{
		Name:     "Tomatoes",
		Price:    40,
		Category: "vegetables",
	})
	assertErrContains(t, err, "product not found")
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
