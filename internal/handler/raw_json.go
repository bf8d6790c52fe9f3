package handler

import (
	"github.com/deppfellow/analytics/internal/model"
	"github.com/deppfellow/analytics/internal/server"
	"github.com/deppfellow/analytics/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	msgGetWorks    = "GET works!"
	msgSaved       = "Saved!"
	msgNoDataFound = "No data found"
)

type RawJSONHandler struct {
	Handler
	rawJSONService *service.RawJSONService
}

func NewRawJSONHandler(s *server.Server, rawJSONService *service.RawJSONService) *RawJSONHandler {
	return &RawJSONHandler{
		Handler:        NewHandler(s),
		rawJSONService: rawJSONService,
	}
}

// TestGet is a liveness probe for the /data routes. It never touches storage.
func (h *RawJSONHandler) TestGet(c echo.Context, _ *model.EmptyPayload) (string, error) {
	return msgGetWorks, nil
}

// GetRawJSON returns the earliest stored document as JSON text.
func (h *RawJSONHandler) GetRawJSON(c echo.Context, _ *model.EmptyPayload) (string, error) {
	data, err := h.rawJSONService.GetFirstRawJSON(c.Request().Context())
	if err != nil {
		return "", err
	}
	if data == nil {
		return msgNoDataFound, nil
	}
	return data.JSONData, nil
}

// SaveRawJSON stores the request body as a new document.
func (h *RawJSONHandler) SaveRawJSON(c echo.Context, payload *model.SaveRawJSONPayload) (string, error) {
	if _, err := h.rawJSONService.SaveRawJSON(c.Request().Context(), payload.Bytes()); err != nil {
		return "", err
	}
	return msgSaved, nil
}
