package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// Orderは1商品×数量の購入。配達完了までを追跡する。
// IsAvailable=falseとCourierIDセットは常に同時（条件付きUPDATEで守る）
type Order struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64  `gorm:"not null;index" json:"customer"`
	ProductID  int64  `gorm:"not null;index" json:"product"`
	FarmerID   int64  `gorm:"not null;index" json:"farmer"`
	CourierID  *int64 `gorm:"index" json:"courier,omitempty"`

	Quantity    int64 `gorm:"not null" json:"quantity"`
	TotalAmount int64 `gorm:"not null" json:"totalAmount"`

	Status        OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null" json:"paymentStatus"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"paymentMethod"`

	//配達先住所（自由記述。地図連携側でジオコーディングする）
	Location string `gorm:"type:varchar(512);not null" json:"location"`

	//未アサインならtrue
	IsAvailable bool `gorm:"not null;default:true" json:"isAvailable"`

	//6桁の受け取り確認コード。顧客だけに通知で届く
	DeliveryCode string `gorm:"column:delivery_code;type:varchar(6);not null" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
