// AngelaMos | 2026
// handler.go

package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/streamora/internal/core"
	"github.com/angelamos/streamora/internal/middleware"
	"github.com/angelamos/streamora/internal/user"
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
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/videos/{videoID}/comments", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.Create)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Use(authenticator)
		r.Delete("/{commentID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	caller := middleware.GetIdentity(r.Context())

	comment, err := h.service.Create(r.Context(), videoID, caller.ID, req)
	if err != nil {
		core.WriteError(w, err)
		return
	}

	core.Created(w, CommentResponse{
		ID:      comment.ID,
		VideoID: comment.VideoID,
		Author: user.Summary{
			ID:        caller.ID,
			Name:      caller.Name,
			Username:  caller.Username,
			AvatarURL: caller.AvatarURL,
		},
		Text:      comment.Body,
		CreatedAt: comment.CreatedAt,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	params := ListParams{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 20),
		Sort:  r.URL.Query().Get("sort"),
	}

	comments, total, params, err := h.service.ListByVideo(
		r.Context(), videoID, params)
	if err != nil {
		core.WriteError(w, err)
		return
	}

	core.Paginated(w,
		ToCommentResponseList(comments),
		params.Page, params.Limit, total)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "commentID")
	caller := middleware.GetIdentity(r.Context())

	if err := h.service.Delete(r.Context(), caller, commentID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Comment")
			return
		}
		core.WriteError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "Comment deleted successfully"})
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
