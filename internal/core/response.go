// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// API envelope: every success body is {success:true, data, meta} and
// every failure is {success:false, message, errors?}. Handlers never
// hand-build status codes; WriteError is the single translation point.

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Meta    any  `json:"meta"`
}

type errorEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Data:    data,
		Meta:    struct{}{},
	})
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, successEnvelope{
		Success: true,
		Data:    data,
		Meta:    struct{}{},
	})
}

func Paginated(w http.ResponseWriter, data any, page, limit, total int) {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Data:    data,
		Meta: PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message, nil)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not authorized"
	}
	writeError(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, resource string) {
	writeError(w, http.StatusNotFound, resource+" not found", nil)
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	writeError(w, http.StatusInternalServerError, "Server Error", nil)
}

// WriteError maps an error to the status-code contract. AppErrors carry
// their own status; bare sentinels get the taxonomy default; anything
// unrecognized is a 500 with no internal detail leaked.
func WriteError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeError(w, appErr.Status, appErr.Message, appErr.Fields)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, ErrDuplicateKey):
		writeError(w, http.StatusBadRequest, "Duplicate field value entered", nil)
	case errors.Is(err, ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Not authorized", nil)
	case errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenInvalid):
		writeError(w, http.StatusUnauthorized, "Not authorized, invalid token", nil)
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden", nil)
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input", nil)
	default:
		InternalServerError(w, err)
	}
}

func writeError(
	w http.ResponseWriter,
	status int,
	message string,
	fields []FieldError,
) {
	writeJSON(w, status, errorEnvelope{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(v)
}
