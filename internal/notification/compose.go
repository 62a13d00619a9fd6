package notification

import (
	"fmt"
	"time"

	"farmmarket/internal/domain/model"
)

// 集荷通知に入れる注文まわりの情報
type PickupDetails struct {
	Order        model.Order
	ProductName  string
	FarmerName   string
	CourierName  string
	CourierPhone string
}

// PickupMessageは配達員アサイン時に顧客へ送る本文を組み立てる。
// 受け取り確認コードはここでだけ顧客に見せる
func PickupMessage(d PickupDetails) (subject string, body string) {
	subject = fmt.Sprintf("Your order #%d has been picked up", d.Order.ID)
	body = fmt.Sprintf(
		"Your order has been picked up and is on its way.\n\n"+
			"Order ID: %d\n"+
			"Product: %s\n"+
			"Quantity: %d\n"+
			"Total amount: %d\n"+
			"Farmer: %s\n\n"+
			"Delivery verification code: %s\n"+
			"Share this code with the courier only when you receive your order.\n\n"+
			"Courier: %s (%s)\n",
		d.Order.ID,
		d.ProductName,
		d.Order.Quantity,
		d.Order.TotalAmount,
		d.FarmerName,
		d.Order.DeliveryCode,
		d.CourierName,
		d.CourierPhone,
	)
	return subject, body
}

// DeliveredMessageは配達確認後に顧客へ送る本文を組み立てる
func DeliveredMessage(o model.Order, productName string, deliveredAt time.Time) (subject string, body string) {
	subject = fmt.Sprintf("Your order #%d has been delivered", o.ID)
	body = fmt.Sprintf(
		"Your order has been delivered.\n\n"+
			"Order ID: %d\n"+
			"Product: %s\n"+
			"Quantity: %d\n"+
			"Total amount: %d\n"+
			"Delivered at: %s\n\n"+
			"Thank you for shopping at the farmers market.\n",
		o.ID,
		productName,
		o.Quantity,
		o.TotalAmount,
		deliveredAt.Format(time.RFC1123),
	)
	return subject, body
}
