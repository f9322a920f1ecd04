package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BradenHooton/gardenbook/internal/models"
)

var domainErrors = []error{
	models.ErrNotFound,
	models.ErrConflict,
	models.ErrBadRequest,
	models.ErrForbidden,
	models.ErrUnauthorized,
	models.ErrInvalidCredentials,
	models.ErrEmailNotVerified,
	models.ErrCodeInvalid,
}

// storeError passes recognised domain errors through and re-signals anything
// else from the persistence layer as a bad request, logging the cause.
func storeError(logger *slog.Logger, op string, err error) error {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}

	logger.Error("store operation failed",
		slog.String("operation", op),
		slog.Any("error", err))
	return fmt.Errorf("%w: %s failed", models.ErrBadRequest, op)
}
