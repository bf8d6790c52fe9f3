package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/analytics/internal/lib/email"
	"github.com/hibiken/asynq"
)

// contactNotifier is satisfied by *email.Client.
type contactNotifier interface {
	SendContactNotification(to string, n email.ContactNotification) error
}

// handleContactNotificationTask emails the configured recipient about a new contact.
// Returning an error makes Asynq schedule a retry.
func (j *JobService) handleContactNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p ContactNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact notification payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskContactNotification).
		Int64("contact_id", p.ContactID).
		Msg("Processing contact notification task")

	err := j.notifier.SendContactNotification(j.notifyTo, email.ContactNotification{
		ContactID:   p.ContactID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Message:     p.Message,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC1123),
	})
	if err != nil {
		j.logger.Error().
			Str("type", TaskContactNotification).
			Int64("contact_id", p.ContactID).
			Err(err).
			Msg("Failed to send contact notification")
		return err
	}

	j.logger.Info().
		Str("type", TaskContactNotification).
		Int64("contact_id", p.ContactID).
		Msg("Successfully sent contact notification")

	return nil
}
