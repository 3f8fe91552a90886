// File: services/tasks/client.go
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"miagenda/config"
	"miagenda/models"
	"miagenda/utils"
)

// Client enqueues notification tasks onto the redis-backed queue. It
// implements booking.NotificationQueue.
type Client struct {
	inner *asynq.Client
}

// NewClient builds an asynq client against the queue database configured in
// the application config.
func NewClient() *Client {
	return &Client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueBooking queues a booking notification for immediate processing.
func (c *Client) EnqueueBooking(ctx context.Context, payload models.NotificationPayload) error {
	task, err := NewBookingNotificationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}
	info, err := c.inner.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	if err != nil {
		return fmt.Errorf("failed to enqueue notification task: %w", err)
	}
	utils.GetLogger().Info("enqueued booking notification",
		zap.String("taskID", info.ID),
		zap.String("kind", payload.Kind),
		zap.String("appointmentID", payload.AppointmentID),
	)
	return nil
}

// ScheduleReminder queues a reminder to run at fireAt.
func (c *Client) ScheduleReminder(ctx context.Context, payload models.NotificationPayload, fireAt time.Time) error {
	task, err := NewReminderTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := c.inner.EnqueueContext(ctx, task, ReminderOptions(fireAt)...)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder task: %w", err)
	}
	utils.GetLogger().Info("scheduled reminder",
		zap.String("taskID", info.ID),
		zap.String("appointmentID", payload.AppointmentID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// Close releases the underlying redis connection.
func (c *Client) Close() error {
	return c.inner.Close()
}
