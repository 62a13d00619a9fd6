package repository

import (
	"context"

	"farmmarket/internal/domain/model"
)

type FarmerRepository interface {
	Create(ctx context.Context, f model.Farmer) (int64, error)
	FindByID(ctx context.Context, farmerID int64) (model.Farmer, error)
	FindByUserID(ctx context.Context, userID int64) (model.Farmer, error)
	//集荷場所のグルーピング用にまとめて引く
	ListByIDs(ctx context.Context, farmerIDs []int64) ([]model.Farmer, error)
}
