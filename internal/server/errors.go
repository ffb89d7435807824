package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/geoguess/tracker/internal/geoguess"
)

// apiError is an expected failure with its HTTP status. Extra fields
// are merged into the JSON body next to "error".
type apiError struct {
	status int
	msg    string
	fields map[string]any
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) with(key string, v any) *apiError {
	if e.fields == nil {
		e.fields = make(map[string]any)
	}
	e.fields[key] = v
	return e
}

func (e *apiError) body() map[string]any {
	b := map[string]any{"error": e.msg}
	for k, v := range e.fields {
		b[k] = v
	}
	return b
}

func badRequest(msg string) *apiError { return &apiError{status: http.StatusBadRequest, msg: msg} }
func notFound(msg string) *apiError   { return &apiError{status: http.StatusNotFound, msg: msg} }
func conflict(msg string) *apiError   { return &apiError{status: http.StatusConflict, msg: msg} }

// apiHandler is a handler that reports failures by returning them.
type apiHandler func(w http.ResponseWriter, r *http.Request) error

// errorHandler adapts apiHandlers to http.HandlerFunc. An *apiError is
// written with its own status, an *geoguess.InvalidIDError becomes 400,
// and anything else is logged and answered with a generic 500.
func errorHandler(logger *slog.Logger) func(apiHandler) http.HandlerFunc {
	return func(h apiHandler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			err := h(w, r)
			if err == nil {
				return
			}

			var ae *apiError
			if errors.As(err, &ae) {
				writeJSON(w, ae.status, ae.body())
				return
			}

			var invalid *geoguess.InvalidIDError
			if errors.As(err, &invalid) {
				writeJSON(w, http.StatusBadRequest, badRequest("invalid id format").with("id", invalid.ID).body())
				return
			}

			logger.Error("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
				"request_id", middleware.GetReqID(r.Context()),
			)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
	}
}
