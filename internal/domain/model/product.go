package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryVegetables ProductCategory = "VEGETABLES"
	CategoryFruits     ProductCategory = "FRUITS"
	CategoryDairy      ProductCategory = "DAIRY"
	CategoryGrains     ProductCategory = "GRAINS"
	CategoryOther      ProductCategory = "OTHER"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	FarmerID    int64           `gorm:"not null;index" json:"farmer_id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       int64           `gorm:"not null" json:"price"`
	Stock       int64           `gorm:"not null" json:"stock"`
	Category    ProductCategory `gorm:"type:varchar(20);not null" json:"category"`
	IsAvailable bool            `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
