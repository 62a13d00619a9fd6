package usecase

import (
	"context"
	"net/http"

	"farmmarket/internal/domain/model"
	repo "farmmarket/internal/repository"
)

type DashboardUsecase struct {
	farmers  repo.FarmerRepository
	orders   repo.OrderRepository
	products repo.ProductRepository
}

// DI
func NewDashboardUsecase(
	farmers repo.FarmerRepository,
	orders repo.OrderRepository,
	products repo.ProductRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		farmers:  farmers,
		orders:   orders,
		products: products,
	}
}

type DashboardStats struct {
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalQuantity int64 `json:"totalQuantity"`

	PendingOrders   int64 `json:"pendingOrders"`
	CompletedOrders int64 `json:"completedOrders"`
	CanceledOrders  int64 `json:"canceledOrders"`

	PaymentPending   int64 `json:"paymentPending"`
	PaymentCompleted int64 `json:"paymentCompleted"`
	PaymentFailed    int64 `json:"paymentFailed"`

	CashOrders   int64 `json:"cashOrders"`
	OnlineOrders int64 `json:"onlineOrders"`

	AverageOrderValue float64 `json:"averageOrderValue"`
	AverageQuantity   float64 `json:"averageQuantity"`
	MaxOrderValue     int64   `json:"maxOrderValue"`
	MinOrderValue     int64   `json:"minOrderValue"`

	MostOrderedProduct string `json:"mostOrderedProduct"`

	//COMPLETEDの注文だけを支払い方法別に集計した売上
	CashRevenue   int64 `json:"cashRevenue"`
	OnlineRevenue int64 `json:"onlineRevenue"`
	//PENDINGの注文の合計（支払い方法は問わない）
	PendingRevenue int64 `json:"pendingRevenue"`

	RecentOrders []model.Order `json:"recentOrders"`
}

type DashboardOutput struct {
	Message string `json:"message,omitempty"`
	Stats   any    `json:"stats"`
}

// FarmerDashboardStatsは全期間の注文を読み取り専用で集計する
func (u *DashboardUsecase) FarmerDashboardStats(ctx context.Context, userID int64) (DashboardOutput, error) {
	if userID <= 0 {
		return DashboardOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	farmer, err := u.farmers.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return DashboardOutput{}, NewHTTPError(http.StatusNotFound, "farmer not found")
	}
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orders.ListByFarmerID(ctx, farmer.ID)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//0件なら平均もmin/maxも計算しない
	if len(orders) == 0 {
		return DashboardOutput{
			Message: "no orders yet",
			Stats:   struct{}{},
		}, nil
	}

	stats := DashboardStats{
		TotalOrders:   int64(len(orders)),
		MinOrderValue: orders[0].TotalAmount,
		MaxOrderValue: orders[0].TotalAmount,
	}

	quantityByProduct := make(map[int64]int64)

	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount
		stats.TotalQuantity += o.Quantity
		quantityByProduct[o.ProductID] += o.Quantity

		if o.TotalAmount > stats.MaxOrderValue {
			stats.MaxOrderValue = o.TotalAmount
		}
		if o.TotalAmount < stats.MinOrderValue {
			stats.MinOrderValue = o.TotalAmount
		}

		switch o.Status {
		case model.OrderStatusPending:
			stats.PendingOrders++
			stats.PendingRevenue += o.TotalAmount
		case model.OrderStatusCompleted:
			stats.CompletedOrders++
			if o.PaymentMethod == model.PaymentMethodCash {
				stats.CashRevenue += o.TotalAmount
			} else {
				stats.OnlineRevenue += o.TotalAmount
			}
		case model.OrderStatusCanceled:
			stats.CanceledOrders++
		}

		switch o.PaymentStatus {
		case model.PaymentStatusPending:
			stats.PaymentPending++
		case model.PaymentStatusCompleted:
			stats.PaymentCompleted++
		case model.PaymentStatusFailed:
			stats.PaymentFailed++
		}

		switch o.PaymentMethod {
		case model.PaymentMethodCash:
			stats.CashOrders++
		case model.PaymentMethodOnline:
			stats.OnlineOrders++
		}
	}

	stats.AverageOrderValue = float64(stats.TotalRevenue) / float64(len(orders))
	stats.AverageQuantity = float64(stats.TotalQuantity) / float64(len(orders))

	//数量合計が最大の商品。同数のときはどれか1つ
	var topProductID int64
	var topQuantity int64 = -1
	for productID, qty := range quantityByProduct {
		if qty > topQuantity {
			topQuantity = qty
			topProductID = productID
		}
	}
	stats.MostOrderedProduct = u.resolveProductName(ctx, topProductID)

	//直近5件（登録順の末尾）
	recent := orders
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	stats.RecentOrders = recent

	return DashboardOutput{Stats: stats}, nil
}

// 商品名を引く。消えていればidの文字列でしのぐ
func (u *DashboardUsecase) resolveProductName(ctx context.Context, productID int64) string {
	products, err := u.products.ListByIDs(ctx, []int64{productID})
	if err != nil || len(products) == 0 {
		return "unknown"
	}
	return products[0].Name
}
