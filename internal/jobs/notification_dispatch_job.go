package jobs

import (
	"context"
	"log/slog"
	"time"

	"farmmarket/internal/notification"
	repo "farmmarket/internal/repository"

	"github.com/robfig/cron/v3"
)

const (
	dispatchBatchSize = 20
	maxSendAttempts   = 5
)

// NotificationDispatchJobはoutboxの送信待ちを定期的に掃く。
// 送信失敗は記録して次回に回す。maxSendAttemptsを超えたらFAILEDで打ち止め
type NotificationDispatchJob struct {
	notifications repo.NotificationRepository
	mailer        notification.Mailer
	cron          *cron.Cron
	logger        *slog.Logger
}

func NewNotificationDispatchJob(
	notifications repo.NotificationRepository,
	mailer notification.Mailer,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		notifications: notifications,
		mailer:        mailer,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "notification_dispatch_job"),
	}
}

// Startは5秒ごとの送信ループを始める
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.dispatchOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("notification dispatch job started (every 5s)")
	return nil
}

func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.Info("notification dispatch job stopped")
}

func (j *NotificationDispatchJob) dispatchOnce(ctx context.Context) {
	pending, err := j.notifications.ListPending(ctx, dispatchBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "list pending notifications failed", "error", err)
		return
	}

	for _, n := range pending {
		if err := j.mailer.Send(ctx, n.Recipient, n.Subject, n.Body); err != nil {
			final := n.Attempts+1 >= maxSendAttempts
			j.logger.WarnContext(ctx, "notification send failed",
				"notification_id", n.ID,
				"order_id", n.OrderID,
				"attempts", n.Attempts+1,
				"final", final,
				"error", err,
			)
			if err := j.notifications.MarkFailed(ctx, n.ID, err.Error(), final); err != nil {
				j.logger.ErrorContext(ctx, "mark failed failed", "notification_id", n.ID, "error", err)
			}
			continue
		}

		if err := j.notifications.MarkSent(ctx, n.ID, time.Now()); err != nil {
			j.logger.ErrorContext(ctx, "mark sent failed", "notification_id", n.ID, "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "notification sent",
			"notification_id", n.ID,
			"order_id", n.OrderID,
			"kind", n.Kind,
		)
	}
}
