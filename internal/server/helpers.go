package server

import (
	"errors"

	"waypoint/internal/models"
	"waypoint/internal/session"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// sessionFrom extracts the authenticated session stored by AuthRequired.
func sessionFrom(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals("session").(*session.Session)
	return sess
}

// respondStoreError maps the data layer's error taxonomy onto HTTP statuses.
func respondStoreError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeNotAuthenticated:
		status = fiber.StatusUnauthorized
	case models.CodeUnauthorized:
		status = fiber.StatusForbidden
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeValidation:
		status = fiber.StatusBadRequest
	}
	return models.RespondWithError(c, status, appErr)
}

// parseUintParam extracts a route parameter as a positive uint. On failure it
// writes a 400 response and returns errResponseWritten.
func parseUintParam(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}
