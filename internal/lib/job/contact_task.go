package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/analytics/internal/lib/utils"
	"github.com/deppfellow/analytics/internal/model"
	"github.com/hibiken/asynq"
)

const (
	// TaskContactNotification is the job type name stored in Redis.
	TaskContactNotification = "email:contact_notification"
)

// ContactNotificationPayload is the JSON payload of a contact notification task.
type ContactNotificationPayload struct {
	ContactID   int64     `json:"contact_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewContactNotificationTask builds the task announcing a saved contact.
//
// Retried up to 3 times on the default queue, 30s per attempt.
func NewContactNotificationTask(contact *model.Contact) (*asynq.Task, error) {
	payload, err := json.Marshal(ContactNotificationPayload{
		ContactID:   contact.ID,
		Name:        utils.StringValue(contact.Name),
		Email:       utils.StringValue(contact.Email),
		PhoneNumber: utils.StringValue(contact.PhoneNumber),
		Message:     utils.StringValue(contact.Message),
		CreatedAt:   contact.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
