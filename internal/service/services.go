// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/analytics/internal/repository"
	"github.com/deppfellow/analytics/internal/server"
)

type Services struct {
	Contact *ContactService
	RawJSON *RawJSONService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *asynq.Client must not end up inside a non-nil interface.
	var jobs TaskEnqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		Contact: NewContactService(repos.Contact, jobs, s.Logger),
		RawJSON: NewRawJSONService(repos.RawJSON, s.Logger),
	}, nil
}
