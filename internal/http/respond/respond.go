// Package respond writes JSON bodies and maps domain errors to HTTP status
// codes for all API handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/cashbook/internal/auth"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/category"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	http.Error(w, err.Error(), status)
}

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, cashbook.ErrCashbookNotFound),
		errors.Is(err, cashbook.ErrChitNotFound),
		errors.Is(err, category.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cashbook.ErrChitLocked),
		errors.Is(err, cashbook.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, cashbook.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, cashbook.ErrInvalidArgument),
		errors.Is(err, cashbook.ErrInvalidAmount),
		errors.Is(err, cashbook.ErrInvalidChitNumber),
		errors.Is(err, cashbook.ErrDuplicitCategory),
		errors.Is(err, cashbook.ErrSingleItemRestriction),
		errors.Is(err, cashbook.ErrAmountMustBeGreaterThanZero):
		return http.StatusUnprocessableEntity
	case errors.Is(err, cashbook.ErrExternalUnavailable):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}
