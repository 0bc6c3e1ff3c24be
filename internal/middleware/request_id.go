package middleware

import (
	contextPkg "ReceiptLedger/pkg/context"
	"ReceiptLedger/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

const RequestIDKey = contextPkg.FiberRequestIDKey

func newRequestIDMiddleware(u utils.IUtils) fiber.Handler {
	if u == nil {
		u = utils.New(0)
	}

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID == "" {
			requestID, _ = u.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
