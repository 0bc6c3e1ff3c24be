package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// FiberRequestIDKey is both the header and the Fiber locals key carrying the
// request id.
const FiberRequestIDKey = "X-Request-ID"

const unknownRequestID = "unknown"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = unknownRequestID
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return unknownRequestID
	}
	return requestID
}

// RequestIDFromLocal reads the id stored by the request-id middleware. It works
// for both *fiber.Ctx and upgraded websocket connections.
func RequestIDFromLocal(local interface{}) string {
	requestID, ok := local.(string)
	if !ok || requestID == "" {
		return unknownRequestID
	}
	return requestID
}

func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID := RequestIDFromLocal(c.Locals(FiberRequestIDKey))
	if requestID == unknownRequestID {
		if header := c.Get(FiberRequestIDKey); header != "" {
			requestID = header
		}
	}

	return WithRequestID(context.Background(), requestID)
}
