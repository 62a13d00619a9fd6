package model

import "time"

// 同じ商品は1人1行まで（複合ユニーク）
type WishlistItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"not null;uniqueIndex:idx_wishlist_customer_product" json:"customer_id"`
	ProductID  int64     `gorm:"not null;uniqueIndex:idx_wishlist_customer_product" json:"product_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
