package repository

import (
	"context"
	"errors"

	"farmmarket/internal/domain/model"
)

// 一意制約違反（同じ商品を二度追加など）を統一
var ErrDuplicate = errors.New("duplicate")

type WishlistRepository interface {
	Add(ctx context.Context, item model.WishlistItem) error
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.WishlistItem, error)
	Remove(ctx context.Context, customerID int64, productID int64) error
}
