package repository

import (
	"context"
	"time"

	"farmmarket/internal/domain/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) (int64, error)
	//送信待ちをid昇順で取る
	ListPending(ctx context.Context, limit int) ([]model.Notification, error)
	MarkSent(ctx context.Context, notificationID int64, at time.Time) error
	//finalがtrueならFAILED（再送しない）、falseならPENDINGのまま回数だけ進める
	MarkFailed(ctx context.Context, notificationID int64, lastError string, final bool) error
}
