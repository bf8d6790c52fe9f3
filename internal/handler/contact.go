package handler

import (
	"github.com/deppfellow/analytics/internal/model"
	"github.com/deppfellow/analytics/internal/server"
	"github.com/deppfellow/analytics/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Handler
	contactService *service.ContactService
}

func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:        NewHandler(s),
		contactService: contactService,
	}
}

// CreateContact saves the submitted contact and echoes the stored row.
func (h *ContactHandler) CreateContact(c echo.Context, payload *model.CreateContactPayload) (*model.Contact, error) {
	return h.contactService.CreateContact(c.Request().Context(), payload)
}
