package middleware

import (
	"math"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// clientLimiters holds one token bucket per client IP.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newClientLimiters(limit rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *clientLimiters) forIP(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}

	return limiter
}

// retryAfter is the whole number of seconds until one token is available.
func (l *clientLimiters) retryAfter() int {
	if l.limit <= 0 {
		return 1
	}
	return int(math.Ceil(1 / float64(l.limit)))
}

// NewRateLimiter lets preflight requests through and limits receipt uploads
// per client IP.
func (m *middleware) NewRateLimiter(ctx *fiber.Ctx) error {
	if ctx.Method() == fiber.MethodOptions {
		return ctx.Next()
	}

	clientIP := ctx.IP()
	if m.limiters.forIP(clientIP).Allow() {
		return ctx.Next()
	}

	m.log.WithFields(logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"ip":         clientIP,
		"path":       ctx.Path(),
	}).Warn("Receipt upload rate limit exceeded")

	ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(m.limiters.retryAfter()))
	return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error": "Too many requests",
	})
}
