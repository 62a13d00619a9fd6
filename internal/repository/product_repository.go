package repository

import (
	"context"
	"errors"

	"farmmarket/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type ProductListQuery struct {
	Page     int
	Limit    int
	Category string
}

type ProductRepository interface {
	//公開一覧（販売中のみ）
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	//ダッシュボードの商品名解決用
	ListByIDs(ctx context.Context, productIDs []int64) ([]model.Product, error)
	ListByFarmerID(ctx context.Context, farmerID int64) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
}
