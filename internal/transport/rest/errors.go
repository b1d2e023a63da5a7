package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/today-record-backend/internal/domain"
	"github.com/heartmarshall/today-record-backend/pkg/ctxutil"
)

// handleError maps domain errors to HTTP responses. Anything unrecognised is
// logged and returned as 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "conflict")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
		log.DebugContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
	default:
		logInternal(log, r, err)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

func logInternal(log *slog.Logger, r *http.Request, err error) {
	log.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		slog.String("path", r.URL.Path),
	)
}
