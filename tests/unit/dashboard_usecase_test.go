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

type DashFarmerRepoMock struct{ mock.Mock }

func (m *DashFarmerRepoMock) Create(ctx context.Context, f model.Farmer) (int64, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashFarmerRepoMock) FindByID(ctx context.Context, farmerID int64) (model.Farmer, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashFarmerRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Farmer, error) {
	args := m.Called(ctx, userID)
	f, _ := args.Get(0).(model.Farmer)
	return f, args.Error(1)
}

func (m *DashFarmerRepoMock) ListByIDs(ctx context.Context, farmerIDs []int64) ([]model.Farmer, error) {
	panic("not used in DashboardUsecase tests")
}

type DashOrderRepoMock struct{ mock.Mock }

func (m *DashOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashOrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashOrderRepoMock) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashOrderRepoMock) ListByFarmerID(ctx context.Context, farmerID int64) ([]model.Order, error) {
	args := m.Called(ctx, farmerID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *DashOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashOrderRepoMock) AssignCourier(ctx context.Context, orderID int64, courierID int64) (bool, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashOrderRepoMock) MarkCompleted(ctx context.Context, orderID int64) (bool, error) {
	panic("not used in DashboardUsecase tests")
}

type DashProductRepoMock struct{ mock.Mock }

func (m *DashProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashProductRepoMock) ListByIDs(ctx context.Context, productIDs []int64) ([]model.Product, error) {
	args := m.Called(ctx, productIDs)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *DashProductRepoMock) ListByFarmerID(ctx context.Context, farmerID int64) ([]model.Product, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in DashboardUsecase tests")
}

func (m *DashProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in DashboardUsecase tests")
}

func newDashboardUsecase(t *testing.T) (*usecase.DashboardUsecase, *DashFarmerRepoMock, *DashOrderRepoMock, *DashProductRepoMock) {
	t.Helper()
	farmers := new(DashFarmerRepoMock)
	orders := new(DashOrderRepoMock)
	products := new(DashProductRepoMock)
	return usecase.NewDashboardUsecase(farmers, orders, products), farmers, orders, products
}

func TestDashboardUsecase_Stats_AggregatesAllBuckets(t *testing.T) {
	ctx := context.Background()
	uc, farmers, orders, products := newDashboardUsecase(t)

	farmers.On("FindByUserID", mock.Anything, int64(30)).Return(model.Farmer{ID: 3, UserID: 30}, nil)
	//ステータス・支払い方法・支払い状態を1件ずつ散らした固定データ
	orders.On("ListByFarmerID", mock.Anything, int64(3)).Return([]model.Order{
		{ID: 1, ProductID: 5, Quantity: 1, TotalAmount: 10, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending, PaymentMethod: model.PaymentMethodCash},
		{ID: 2, ProductID: 5, Quantity: 3, TotalAmount: 20, Status: model.OrderStatusCompleted, PaymentStatus: model.PaymentStatusCompleted, PaymentMethod: model.PaymentMethodOnline},
		{ID: 3, ProductID: 6, Quantity: 2, TotalAmount: 30, Status: model.OrderStatusCanceled, PaymentStatus: model.PaymentStatusFailed, PaymentMethod: model.PaymentMethodCash},
	}, nil)
	products.On("ListByIDs", mock.Anything, []int64{5}).Return([]model.Product{{ID: 5, Name: "Tomatoes"}}, nil)

	out, err := uc.FarmerDashboardStats(ctx, 30)
	assert.NoError(t, err)
	assert.Empty(t, out.Message)

	stats, ok := out.Stats.(usecase.DashboardStats)
	assert.True(t, ok)

	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(60), stats.TotalRevenue)
	assert.Equal(t, int64(6), stats.TotalQuantity)

	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.CompletedOrders)
	assert.Equal(t, int64(1), stats.CanceledOrders)

	assert.Equal(t, int64(1), stats.PaymentPending)
	assert.Equal(t, int64(1), stats.PaymentCompleted)
	assert.Equal(t, int64(1), stats.PaymentFailed)

	assert.Equal(t, int64(2), stats.CashOrders)
	assert.Equal(t, int64(1), stats.OnlineOrders)

	assert.Equal(t, 20.0, stats.AverageOrderValue)
	assert.Equal(t, 2.0, stats.AverageQuantity)
	assert.Equal(t, int64(30), stats.MaxOrderValue)
	assert.Equal(t, int64(10), stats.MinOrderValue)

	//商品5が数量4で最多
	assert.Equal(t, "Tomatoes", stats.MostOrderedProduct)

	//COMPLETED分だけ方法別売上に入る
	assert.Equal(t, int64(0), stats.CashRevenue)
	assert.Equal(t, int64(20), stats.OnlineRevenue)
	assert.Equal(t, int64(10), stats.PendingRevenue)

	assert.Len(t, stats.RecentOrders, 3)
}

func TestDashboardUsecase_Stats_RecentOrdersKeepsLastFive(t *testing.T) {
	ctx := context.Background()
	uc, farmers, orders, products := newDashboardUsecase(t)

	all := make([]model.Order, 0, 7)
	for i := int64(1); i <= 7; i++ {
		all = append(all, model.Order{ID: i, ProductID: 5, Quantity: 1, TotalAmount: 10, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending, PaymentMethod: model.PaymentMethodCash})
	}
	farmers.On("FindByUserID", mock.Anything, int64(30)).Return(model.Farmer{ID: 3}, nil)
	orders.On("ListByFarmerID", mock.Anything, int64(3)).Return(all, nil)
	products.On("ListByIDs", mock.Anything, []int64{5}).Return([]model.Product{{ID: 5, Name: "Tomatoes"}}, nil)

	out, err := uc.FarmerDashboardStats(ctx, 30)
	assert.NoError(t, err)

	stats := out.Stats.(usecase.DashboardStats)
	assert.Len(t, stats.RecentOrders, 5)
	assert.Equal(t, int64(3), stats.RecentOrders[0].ID)
	assert.Equal(t, int64(7), stats.RecentOrders[4].ID)
}

func TestDashboardUsecase_Stats_NoOrdersYet(t *testing.T) {
	ctx := context.Background()
	uc, farmers, orders, _ := newDashboardUsecase(t)

	farmers.On("FindByUserID", mock.Anything, int64(30)).Return(model.Farmer{ID: 3}, nil)
	orders.On("ListByFarmerID", mock.Anything, int64(3)).Return([]model.Order{}, nil)

	out, err := uc.FarmerDashboardStats(ctx, 30)
	assert.NoError(t, err)
	assert.Equal(t, "no orders yet", out.Message)
	assert.Equal(t, struct{}{}, out.Stats)
}

func TestDashboardUsecase_Stats_MissingProductFallsBackToUnknown(t *testing.T) {
	ctx := context.Background()
	uc, farmers, orders, products := newDashboardUsecase(t)

	farmers.On("FindByUserID", mock.Anything, int64(30)).Return(model.Farmer{ID: 3}, nil)
	orders.On("ListByFarmerID", mock.Anything, int64(3)).Return([]model.Order{
		{ID: 1, ProductID: 99, Quantity: 1, TotalAmount: 10, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending, PaymentMethod: model.PaymentMethodCash},
	}, nil)
	//商品が削除済みで引けないケース
	products.On("ListByIDs", mock.Anything, []int64{99}).Return([]model.Product{}, nil)

	out, err := uc.FarmerDashboardStats(ctx, 30)
	assert.NoError(t, err)

	stats := out.Stats.(usecase.DashboardStats)
	assert.Equal(t, "unknown", stats.MostOrderedProduct)
}

func TestDashboardUsecase_Stats_FarmerNotFound(t *testing.T) {
	ctx := context.Background()
	uc, farmers, _, _ := newDashboardUsecase(t)

	farmers.On("FindByUserID", mock.Anything, int64(30)).Return(model.Farmer{}, repo.ErrNotFound)

	_, err := uc.FarmerDashboardStats(ctx, 30)
	assertErrContains(t, err, "farmer not found")
}
