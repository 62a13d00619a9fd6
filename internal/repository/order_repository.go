package repository

import (
	"context"

	"farmmarket/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//登録順（id昇順）で全件
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	ListByFarmerID(ctx context.Context, farmerID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	//未アサインの時だけ配達員を据える。更新できたらtrue
	AssignCourier(ctx context.Context, orderID int64, courierID int64) (bool, error)
	//PENDINGの時だけCOMPLETEDへ。更新できたらtrue
	MarkCompleted(ctx context.Context, orderID int64) (bool, error)
}
