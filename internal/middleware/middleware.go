package middleware

import (
	contextPkg "ReceiptLedger/pkg/context"
	"ReceiptLedger/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	limiters            *clientLimiters
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

type Option func(*middleware)

// WithRateLimit overrides the per-IP limit applied to the upload endpoints.
func WithRateLimit(reqRate rate.Limit, burstSize int) Option {
	return func(m *middleware) {
		m.limiters = newClientLimiters(reqRate, burstSize)
	}
}

func New(logger *logrus.Logger, u utils.IUtils, opts ...Option) Middleware {
	m := &middleware{
		limiters:            newClientLimiters(5, 10),
		requestIDMiddleware: newRequestIDMiddleware(u),
		log:                 logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	return contextPkg.RequestIDFromLocal(ctx.Locals(RequestIDKey))
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}

func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return LoggerConfig()
}
