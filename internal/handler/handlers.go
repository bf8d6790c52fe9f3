package handler

import (
	"github.com/deppfellow/analytics/internal/server"
	"github.com/deppfellow/analytics/internal/service"
)

// Handlers groups every HTTP handler so router setup receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Contact *ContactHandler
	RawJSON *RawJSONHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Contact: NewContactHandler(s, services.Contact),
		RawJSON: NewRawJSONHandler(s, services.RawJSON),
	}
}
