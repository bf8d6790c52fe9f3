package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deppfellow/analytics/internal/model"
	"github.com/deppfellow/analytics/internal/server"
	"github.com/jackc/pgx/v5"
)

type RawJSONRepository struct {
	server *server.Server
}

func NewRawJSONRepository(s *server.Server) *RawJSONRepository {
	return &RawJSONRepository{server: s}
}

// CreateRawJSON stores document, which must already be valid compact JSON.
func (r *RawJSONRepository) CreateRawJSON(ctx context.Context, document string) (*model.RawJSONData, error) {
	stmt := `
		INSERT INTO
			raw_json_data (json_data)
		VALUES
			(@json_data)
		RETURNING
		id, json_data::text AS json_data
	`

	var saved model.RawJSONData
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"json_data": json.RawMessage(document),
		})
		if err != nil {
			return fmt.Errorf("failed to execute create raw json query: %w", err)
		}

		saved, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RawJSONData])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:raw_json_data: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// GetFirstRawJSON returns the row with the lowest id, or nil when the table is empty.
func (r *RawJSONRepository) GetFirstRawJSON(ctx context.Context) (*model.RawJSONData, error) {
	stmt := `
		SELECT
			id,
			json_data::text AS json_data
		FROM
			raw_json_data
		ORDER BY
			id ASC
		LIMIT
			1
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get first raw json query: %w", err)
	}

	data, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RawJSONData])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:raw_json_data: %w", err)
	}

	return &data, nil
}
