package repository

import (
	"context"

	"farmmarket/internal/domain/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, c model.Customer) (int64, error)
	FindByID(ctx context.Context, customerID int64) (model.Customer, error)
	//ログインユーザーからプロフィールを引く
	FindByUserID(ctx context.Context, userID int64) (model.Customer, error)
}
