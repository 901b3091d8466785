// AngelaMos | 2026
// handler.go

package video

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	authenticator, optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{videoID}/playback-url", h.PlaybackURL)
		r.Put("/{videoID}/view", h.RecordView)

		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/{videoID}", h.Get)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.Create)
			r.Post("/upload-url", h.UploadURL)
			r.Put("/{videoID}/like", h.ToggleLike)
			r.Delete("/{videoID}", h.Delete)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	ownerID := middleware.GetUserID(r.Context())

	video, err := h.service.Create(r.Context(), ownerID, req)
	if err != nil {
		core.WriteError(w, err)
		return
	}

	core.Created(w, ToVideoResponse(video))
}

func (h *Handler) UploadURL(w http.ResponseWriter, r *http.Request) {
	var req UploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	target, err := h.service.UploadURL(r.Context(), req)
	if err != nil {
		core.WriteError(w, err)
		return
	}

	core.OK(w, target)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 10),
		Sort:  r.URL.Query().Get("sort"),
	}

	videos, total, params, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(w,
		ToVideoResponseList(videos),
		params.Page, params.Limit, total)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	viewerID := middleware.GetUserID(r.Context())

	video, err := h.service.Get(r.Context(), videoID, viewerID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Video")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToVideoResponse(video))
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	userID := middleware.GetUserID(r.Context())

	resp, err := h.service.ToggleLike(r.Context(), videoID, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Video")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	views, err := h.service.RecordView(r.Context(), videoID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Video")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ViewResponse{Views: views})
}

func (h *Handler) PlaybackURL(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	url, err := h.service.PlaybackURL(r.Context(), videoID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Video")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PlaybackResponse{PlaybackURL: url})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	caller := middleware.GetIdentity(r.Context())

	if err := h.service.Delete(r.Context(), caller, videoID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Video")
			return
		}
		core.WriteError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "Video deleted successfully"})
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
