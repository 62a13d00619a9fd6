package model

import "time"

type NotificationKind string

const (
	NotificationOrderPickedUp  NotificationKind = "ORDER_PICKED_UP"
	NotificationOrderDelivered NotificationKind = "ORDER_DELIVERED"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// Notificationは送信待ちメールのoutbox行。
// 状態遷移と同じトランザクションで積み、ジョブが後から送る
type Notification struct {
	ID        int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID   string             `gorm:"type:varchar(36);not null;uniqueIndex" json:"event_id"`
	OrderID   int64              `gorm:"not null;index" json:"order_id"`
	Kind      NotificationKind   `gorm:"type:varchar(30);not null" json:"kind"`
	Recipient string             `gorm:"type:varchar(255);not null" json:"recipient"`
	Subject   string             `gorm:"type:varchar(255);not null" json:"subject"`
	Body      string             `gorm:"type:text;not null" json:"body"`
	Status    NotificationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Attempts  int                `gorm:"not null;default:0" json:"attempts"`
	LastError string             `gorm:"type:text" json:"last_error"`
	CreatedAt time.Time          `gorm:"not null;autoCreateTime" json:"created_at"`
	SentAt    *time.Time         `json:"sent_at"`
}
