package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/analytics/internal/model"
	"github.com/deppfellow/analytics/internal/server"
	"github.com/jackc/pgx/v5"
)

type ContactRepository struct {
	server *server.Server
}

func NewContactRepository(s *server.Server) *ContactRepository {
	return &ContactRepository{server: s}
}

// CreateContact inserts contact and returns the stored row, including the
// database-assigned id and created_at.
func (r *ContactRepository) CreateContact(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	stmt := `
		INSERT INTO
			contacts (
				name,
				email,
				phone_number,
				message
			)
		VALUES
			(
				@name,
				@email,
				@phone_number,
				@message
			)
		RETURNING
		id, name, email, phone_number, message, created_at
	`

	var saved model.Contact
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"name":         contact.Name,
			"email":        contact.Email,
			"phone_number": contact.PhoneNumber,
			"message":      contact.Message,
		})
		if err != nil {
			return fmt.Errorf("failed to execute create contact query: %w", err)
		}

		saved, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Contact])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:contacts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}
