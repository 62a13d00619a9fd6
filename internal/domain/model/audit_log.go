package model

import "time"

// 注文の状態遷移の証跡
type AuditLog struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorUserID int64     `gorm:"index" json:"actor_user_id"`
	Action      string    `gorm:"type:varchar(50);not null" json:"action"`
	TargetType  string    `gorm:"type:varchar(50);not null" json:"target_type"`
	TargetID    int64     `gorm:"not null;index" json:"target_id"`
	Detail      string    `gorm:"type:text" json:"detail"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
