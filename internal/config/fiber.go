package config

import (
	"ReceiptLedger/pkg/handlerUtil"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger, bodyLimit int64) *fiber.App {
	if bodyLimit <= 0 {
		bodyLimit = 10 * 1024 * 1024
	}

	app := fiber.New(
		fiber.Config{
			AppName:          "Receipt Ledger",
			BodyLimit:        int(bodyLimit) + 1024*1024,
			DisableKeepalive: false,
			StrictRouting:    true,
			CaseSensitive:    true,
			JSONEncoder:      jsoniter.Marshal,
			JSONDecoder:      jsoniter.Unmarshal,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				code := fiber.StatusInternalServerError
				var fiberErr *fiber.Error
				if errors.As(err, &fiberErr) {
					code = fiberErr.Code
				}
				logger.WithFields(logrus.Fields{
					"path":  c.Path(),
					"error": err.Error(),
				}).Warn("Unhandled fiber error")
				return c.Status(code).JSON(handlerUtil.ErrorResponse{Error: err.Error()})
			},
		})

	app.Use(recover.New())

	return app
}
