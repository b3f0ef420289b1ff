package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventlineup/internal/domain"
)

// WriteServiceError maps a service error onto the response envelope.
// Field-scoped rejections are 400 with a code per rejection kind; a bare ErrNotFound is
// 404 with notFoundMessage; a lost write race is 409; anything else is logged and
// answered with 500.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMessage string) {
	if ve, ok := domain.AsValidationError(err); ok {
		WriteJSONFieldError(w, http.StatusBadRequest, validationCode(ve), ve.Message, ve.FieldErrors())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, notFoundMessage)
		return
	}
	if errors.Is(err, domain.ErrConcurrentModification) {
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, "The resource was modified concurrently, retry the request.")
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}

func validationCode(ve *domain.ValidationError) string {
	switch {
	case errors.Is(ve, domain.ErrInvalidRange):
		return ErrCodeInvalidRange
	case errors.Is(ve, domain.ErrOutOfEventBounds):
		return ErrCodeOutOfEventBounds
	case errors.Is(ve, domain.ErrOverlapConflict):
		return ErrCodeOverlapConflict
	case errors.Is(ve, domain.ErrChildrenOutOfBounds):
		return ErrCodeChildrenOutOfBounds
	case errors.Is(ve, domain.ErrDuplicateName):
		return ErrCodeConflict
	default:
		return ErrCodeBadRequest
	}
}
