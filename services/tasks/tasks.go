package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"bookify/models"
)

const (
	TypeSendEmail       = "email:send"
	TypeBookingReminder = "booking:reminder"
)

// NewEmailTask wraps a rendered email for immediate delivery.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeSendEmail, b), nil, nil
}

// NewReminderTask schedules a booking reminder for fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
