package errors

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandleError translates a pipeline error into a JSON response. Only the
// taxonomy code and message reach the client; the wrapped cause is logged.
func HandleError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	if ve, ok := err.(*VideoError); ok {
		if ve.Err != nil {
			logger.Warn("request failed", zap.String("code", ve.Code), zap.Error(ve.Err))
		}

		var status int
		switch ve.Code {
		case "not_found":
			status = fiber.StatusNotFound
		case "conflict", "transcode_pending":
			status = fiber.StatusConflict
		case "invalid_media":
			status = fiber.StatusUnprocessableEntity
		case "unsupported_preset":
			status = fiber.StatusBadRequest
		case "invalid_range":
			status = fiber.StatusRequestedRangeNotSatisfiable
		case "unauthorized":
			status = fiber.StatusUnauthorized
		case "storage_unavailable":
			status = fiber.StatusServiceUnavailable
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error":   ve.Code,
			"message": ve.Message,
		})
	}

	logger.Error("unexpected error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "Internal server error",
	})
}
