package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// writeServiceError maps domain errors to responses. Anything that is not a client error is
// logged and answered with internalMsg so store details never reach the client.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "family not found")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, internalMsg)
	}
}
