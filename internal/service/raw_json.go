package service

import (
	"context"

	"github.com/deppfellow/analytics/internal/errs"
	"github.com/deppfellow/analytics/internal/lib/utils"
	"github.com/deppfellow/analytics/internal/middleware"
	"github.com/deppfellow/analytics/internal/model"
	"github.com/rs/zerolog"
)

// RawJSONStore persists arbitrary JSON documents.
type RawJSONStore interface {
	CreateRawJSON(ctx context.Context, document string) (*model.RawJSONData, error)
	GetFirstRawJSON(ctx context.Context) (*model.RawJSONData, error)
}

type RawJSONService struct {
	store  RawJSONStore
	logger *zerolog.Logger
}

func NewRawJSONService(store RawJSONStore, logger *zerolog.Logger) *RawJSONService {
	return &RawJSONService{
		store:  store,
		logger: logger,
	}
}

// SaveRawJSON stores document in its compact canonical form.
func (s *RawJSONService) SaveRawJSON(ctx context.Context, document []byte) (*model.RawJSONData, error) {
	logger := middleware.LoggerFromContext(ctx, s.logger)

	compact, err := utils.CompactJSON(document)
	if err != nil {
		return nil, errs.NewBadRequestError("Request body must be a valid JSON document", false, nil,
			[]errs.FieldError{{Field: "body", Error: "must be valid JSON"}}, nil)
	}

	saved, err := s.store.CreateRawJSON(ctx, compact)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save raw json document")
		return nil, err
	}

	logger.Info().
		Str("event", "raw_json_saved").
		Int64("raw_json_id", saved.ID).
		Int("size_bytes", len(compact)).
		Msg("raw json document saved")

	return saved, nil
}

// GetFirstRawJSON returns the earliest stored document, or nil when none exist.
func (s *RawJSONService) GetFirstRawJSON(ctx context.Context) (*model.RawJSONData, error) {
	data, err := s.store.GetFirstRawJSON(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx, s.logger).Error().Err(err).Msg("failed to fetch raw json document")
		return nil, err
	}
	return data, nil
}
