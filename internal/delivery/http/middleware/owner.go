package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	pkgerrors "video-service/pkg/errors"
)

// The gateway in front of this service authenticates the user and forwards
// the resolved identity in this header. The pipeline only scopes by it.
const ownerHeader = "X-Owner-Id"

const ownerLocal = "ownerID"

func OwnerIdentity(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := c.Get(ownerHeader)
		if owner == "" {
			return pkgerrors.HandleError(c, logger, pkgerrors.ErrUnauthorized(nil))
		}
		c.Locals(ownerLocal, owner)
		return c.Next()
	}
}

func OwnerID(c *fiber.Ctx) string {
	owner, _ := c.Locals(ownerLocal).(string)
	return owner
}
