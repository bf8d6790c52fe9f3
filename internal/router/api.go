package router

import (
	"net/http"

	"github.com/deppfellow/analytics/internal/handler"
	"github.com/deppfellow/analytics/internal/model"
	"github.com/labstack/echo/v4"
)

func registerContactRoutes(r *echo.Echo, h *handler.Handlers) {
	contacts := r.Group("/api/contacts")

	contacts.POST("", handler.Handle(
		h.Contact.Handler,
		h.Contact.CreateContact,
		http.StatusOK,
		&model.CreateContactPayload{},
	))
}

func registerRawJSONRoutes(r *echo.Echo, h *handler.Handlers) {
	data := r.Group("/data")

	data.GET("/test-get", handler.HandleText(
		h.RawJSON.Handler,
		h.RawJSON.TestGet,
		&model.EmptyPayload{},
	))

	data.GET("/raw", handler.HandleText(
		h.RawJSON.Handler,
		h.RawJSON.GetRawJSON,
		&model.EmptyPayload{},
	))

	data.POST("", handler.HandleText(
		h.RawJSON.Handler,
		h.RawJSON.SaveRawJSON,
		&model.SaveRawJSONPayload{},
	))
}
