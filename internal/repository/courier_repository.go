package repository

import (
	"context"

	"farmmarket/internal/domain/model"
)

type CourierRepository interface {
	Create(ctx context.Context, c model.Courier) (int64, error)
	FindByID(ctx context.Context, courierID int64) (model.Courier, error)
	FindByUserID(ctx context.Context, userID int64) (model.Courier, error)
}
