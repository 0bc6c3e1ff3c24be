package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"ReceiptLedger/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(opts ...Option) Middleware {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, utils.New(0), opts...)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddleware()
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})

	t.Run("generates ulid", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Len(t, string(body), 26)
		assert.Equal(t, string(body), resp.Header.Get(RequestIDKey))
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(RequestIDKey, "client-id")

		resp, err := app.Test(req)
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "client-id", string(body))
	})
}

func TestRateLimiter(t *testing.T) {
	m := newTestMiddleware(WithRateLimit(0, 2))
	app := fiber.New()
	app.All("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodOptions, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSanitizeRequestBody(t *testing.T) {
	assert.Equal(t, `{"text":"[3 chars]"}`, sanitizeRequestBody(fiber.MIMEApplicationJSON, []byte(`{"text":"이마트"}`)))
	assert.Equal(t, "[multipart 4 bytes]", sanitizeRequestBody("multipart/form-data; boundary=x", []byte("abcd")))
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("text/plain", []byte("abcd")))
}

func TestRateLimiterRetryAfter(t *testing.T) {
	m := newTestMiddleware(WithRateLimit(0.5, 1))
	app := fiber.New()
	app.Post("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get(fiber.HeaderRetryAfter))
}
