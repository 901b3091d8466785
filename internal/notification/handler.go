// AngelaMos | 2026
// handler.go

package notification

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/streamora/internal/core"
	"github.com/angelamos/streamora/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/register", h.RegisterDevice)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/send", h.Send)
		})
	})
}

func (h *Handler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var req RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.service.RegisterDevice(
		r.Context(), userID, req.DeviceToken); err != nil {
		core.WriteError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "Device registered successfully"})
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	if err := h.service.Send(r.Context(), req); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Recipient")
			return
		}
		core.WriteError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "Notification sent successfully"})
}
