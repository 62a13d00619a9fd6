package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"farmmarket/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type notificationRepoMock struct{ mock.Mock }

func (m *notificationRepoMock) Create(ctx context.Context, n model.Notification) (int64, error) {
	panic("not used in dispatch tests")
}

func (m *notificationRepoMock) ListPending(ctx context.Context, limit int) ([]model.Notification, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Notification)
	return items, args.Error(1)
}

func (m *notificationRepoMock) MarkSent(ctx context.Context, notificationID int64, at time.Time) error {
	args := m.Called(ctx, notificationID, at)
	return args.Error(0)
}

func (m *notificationRepoMock) MarkFailed(ctx context.Context, notificationID int64, lastError string, final bool) error {
	args := m.Called(ctx, notificationID, lastError, final)
	return args.Error(0)
}

type mailerMock struct{ mock.Mock }

func (m *mailerMock) Send(ctx context.Context, to string, subject string, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func newTestJob(repo *notificationRepoMock, mailer *mailerMock) *NotificationDispatchJob {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNotificationDispatchJob(repo, mailer, logger)
}

func TestDispatchOnce_SendsAndMarksSent(t *testing.T) {
	repo := new(notificationRepoMock)
	mailer := new(mailerMock)
	job := newTestJob(repo, mailer)

	repo.On("ListPending", mock.Anything, dispatchBatchSize).Return([]model.Notification{
		{ID: 1, OrderID: 42, Recipient: "customer@example.com", Subject: "s", Body: "b"},
	}, nil)
	mailer.On("Send", mock.Anything, "customer@example.com", "s", "b").Return(nil)
	repo.On("MarkSent", mock.Anything, int64(1), mock.Anything).Return(nil)

	job.dispatchOnce(context.Background())

	repo.AssertCalled(t, "MarkSent", mock.Anything, int64(1), mock.Anything)
	repo.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchOnce_FailureStaysRetriableBelowMaxAttempts(t *testing.T) {
	repo := new(notificationRepoMock)
	mailer := new(mailerMock)
	job := newTestJob(repo, mailer)

	repo.On("ListPending", mock.Anything, dispatchBatchSize).Return([]model.Notification{
		{ID: 1, OrderID: 42, Recipient: "customer@example.com", Attempts: 0},
	}, nil)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	repo.On("MarkFailed", mock.Anything, int64(1), "smtp down", false).Return(nil)

	job.dispatchOnce(context.Background())

	repo.AssertCalled(t, "MarkFailed", mock.Anything, int64(1), "smtp down", false)
}

func TestDispatchOnce_FailureAtMaxAttemptsIsFinal(t *testing.T) {
	repo := new(notificationRepoMock)
	mailer := new(mailerMock)
	job := newTestJob(repo, mailer)

	repo.On("ListPending", mock.Anything, dispatchBatchSize).Return([]model.Notification{
		{ID: 1, OrderID: 42, Recipient: "customer@example.com", Attempts: maxSendAttempts - 1},
	}, nil)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	repo.On("MarkFailed", mock.Anything, int64(1), "smtp down", true).Return(nil)

	job.dispatchOnce(context.Background())

	repo.AssertCalled(t, "MarkFailed", mock.Anything, int64(1), "smtp down", true)
}
