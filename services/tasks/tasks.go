// File: services/tasks/tasks.go
package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"miagenda/models"
)

// Task types registered with the asynq worker.
const (
	TypeBookingNotify = "notification:booking"
	TypeReminderSend  = "notification:reminder"
)

// NewBookingNotificationTask wraps a booking notification payload for
// immediate delivery.
func NewBookingNotificationTask(payload models.NotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, data), nil
}

// NewReminderTask wraps a reminder payload. The caller schedules it with
// asynq.ProcessAt.
func NewReminderTask(payload models.NotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReminderSend, data), nil
}

// ReminderOptions returns the enqueue options for a reminder firing at the
// given instant.
func ReminderOptions(fireAt time.Time) []asynq.Option {
	return []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
	}
}
