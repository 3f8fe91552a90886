// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"miagenda/config"
	appointmentRepo "miagenda/database/repository/appointment"
	"miagenda/models"
	"miagenda/services/notification"
	"miagenda/services/tasks"
	"miagenda/utils"
)

// Worker runs the asynq server that delivers booking notifications and
// reminders.
type Worker struct {
	server       *asynq.Server
	appointments appointmentRepo.AppointmentRepository
	notifier     notification.NotificationService
}

// NewWorker builds the worker against the configured redis queue database.
func NewWorker(appointments appointmentRepo.AppointmentRepository, notifier notification.NotificationService) *Worker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		},
		asynq.Config{
			Concurrency: 10,
			RetryDelayFunc: func(n int, err error, task *asynq.Task) time.Duration {
				return time.Duration(n) * 30 * time.Second
			},
		},
	)
	return &Worker{server: server, appointments: appointments, notifier: notifier}
}

// Start registers the handlers and runs the server in a goroutine. It returns
// once the server has been started.
func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, w.handleBookingNotify)
	mux.HandleFunc(tasks.TypeReminderSend, w.handleReminder)

	if err := w.server.Start(mux); err != nil {
		return fmt.Errorf("failed to start task worker: %w", err)
	}
	utils.GetLogger().Info("task worker started",
		zap.String("redisAddr", config.AppConfig.RedisAddr),
		zap.Int("queueDB", config.AppConfig.RedisQueueDB),
	)
	return nil
}

// Shutdown waits for in-flight tasks to finish.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleBookingNotify(ctx context.Context, task *asynq.Task) error {
	var payload models.NotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("malformed notification payload: %w: %w", err, asynq.SkipRetry)
	}
	return w.notifier.NotifyBooking(ctx, payload)
}

// handleReminder re-checks the appointment before sending: a reminder that
// was scheduled at booking time must not fire for an appointment that has
// been cancelled or moved since.
func (w *Worker) handleReminder(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var payload models.NotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("malformed reminder payload: %w: %w", err, asynq.SkipRetry)
	}

	appt, err := w.appointments.GetByID(ctx, payload.ProfessionalID, payload.AppointmentID)
	if err != nil {
		logger.Warn("reminder skipped, appointment not found",
			zap.String("appointmentID", payload.AppointmentID), zap.Error(err))
		return nil
	}
	if !appt.IsActive() {
		logger.Info("reminder skipped, appointment no longer active",
			zap.String("appointmentID", appt.ID),
			zap.String("status", appt.Status),
		)
		return nil
	}
	if !appt.Start.Equal(payload.Start) {
		// Rescheduled after this reminder was queued; the reschedule path
		// queued a fresh one.
		logger.Info("reminder skipped, appointment was rescheduled",
			zap.String("appointmentID", appt.ID),
			zap.Time("queuedFor", payload.Start),
			zap.Time("currentStart", appt.Start),
		)
		return nil
	}

	return w.notifier.NotifyBooking(ctx, payload)
}
