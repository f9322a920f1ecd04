package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/BradenHooton/gardenbook/internal/models"
	pkghttp "github.com/BradenHooton/gardenbook/pkg/http"
)

// writeServiceError maps a domain error to its HTTP status. notFound is the
// message used for models.ErrNotFound.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	var fe *models.FieldError
	switch {
	case errors.As(err, &fe):
		pkghttp.WriteErrorWithDetails(w, http.StatusBadRequest, "bad_request", "Invalid request", fe.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		pkghttp.WriteUnauthorized(w, "Invalid email or password")
	case errors.Is(err, models.ErrUnauthorized):
		pkghttp.WriteUnauthorized(w, "Authentication required")
	case errors.Is(err, models.ErrEmailNotVerified):
		pkghttp.WriteForbidden(w, "Email not verified")
	case errors.Is(err, models.ErrCodeInvalid):
		pkghttp.WriteForbidden(w, "Code invalid or expired")
	case errors.Is(err, models.ErrForbidden):
		pkghttp.WriteForbidden(w, "Forbidden")
	case errors.Is(err, models.ErrNotFound):
		pkghttp.WriteNotFound(w, notFound)
	case errors.Is(err, models.ErrConflict):
		pkghttp.WriteConflict(w, "Resource already exists")
	case errors.Is(err, models.ErrBadRequest):
		pkghttp.WriteBadRequest(w, badRequestMessage(err))
	default:
		pkghttp.WriteInternalError(w, "Internal server error")
	}
}

// badRequestMessage strips the sentinel prefix from a wrapped bad request.
func badRequestMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), models.ErrBadRequest.Error()+": ")
	if msg == "" || msg == models.ErrBadRequest.Error() {
		return "Bad request"
	}
	return msg
}

// parseID reads the positive integer {id} URL parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, &models.FieldError{Field: "id", Message: "must be a positive integer"}
	}
	return id, nil
}
