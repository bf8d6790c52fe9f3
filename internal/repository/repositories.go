// Package repository handles all interactions with the database.
//
// It contains the SQL statements used to persist and fetch records,
// abstracting SQL away from the service layer. Every write runs in its own
// transaction: committed on success, rolled back on any error.
package repository

import (
	"github.com/deppfellow/analytics/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Contact *ContactRepository
	RawJSON *RawJSONRepository
}

// NewRepositories constructs the repository container over s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Contact: NewContactRepository(s),
		RawJSON: NewRawJSONRepository(s),
	}
}
