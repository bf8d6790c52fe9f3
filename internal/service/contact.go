package service

import (
	"context"

	"github.com/deppfellow/analytics/internal/lib/job"
	"github.com/deppfellow/analytics/internal/middleware"
	"github.com/deppfellow/analytics/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// ContactStore persists contact submissions.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *model.Contact) (*model.Contact, error)
}

// TaskEnqueuer is the subset of *asynq.Client used to schedule jobs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type ContactService struct {
	store  ContactStore
	jobs   TaskEnqueuer
	logger *zerolog.Logger
}

// NewContactService builds the service. jobs may be nil, in which case no
// notification is scheduled.
func NewContactService(store ContactStore, jobs TaskEnqueuer, logger *zerolog.Logger) *ContactService {
	return &ContactService{
		store:  store,
		jobs:   jobs,
		logger: logger,
	}
}

// CreateContact stores the submission exactly as received and returns the
// saved row. The notification email is best effort: an enqueue failure is
// logged but the saved contact is still returned.
func (s *ContactService) CreateContact(ctx context.Context, payload *model.CreateContactPayload) (*model.Contact, error) {
	logger := middleware.LoggerFromContext(ctx, s.logger)

	contact, err := s.store.CreateContact(ctx, payload.Contact())
	if err != nil {
		logger.Error().Err(err).Msg("failed to create contact")
		return nil, err
	}

	logger.Info().
		Str("event", "contact_created").
		Int64("contact_id", contact.ID).
		Msg("contact saved")

	if s.jobs != nil {
		s.enqueueNotification(ctx, logger, contact)
	}

	return contact, nil
}

func (s *ContactService) enqueueNotification(ctx context.Context, logger *zerolog.Logger, contact *model.Contact) {
	task, err := job.NewContactNotificationTask(contact)
	if err != nil {
		logger.Error().Err(err).Int64("contact_id", contact.ID).Msg("failed to build contact notification task")
		return
	}

	info, err := s.jobs.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error().Err(err).Int64("contact_id", contact.ID).Msg("failed to enqueue contact notification")
		return
	}

	logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("contact_id", contact.ID).
		Msg("contact notification enqueued")
}
