package receiptHandler

import (
	receiptService "ReceiptLedger/internal/api/receipt/service"
	"ReceiptLedger/internal/middleware"
	"ReceiptLedger/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ReceiptHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	receiptService receiptService.IReceiptService
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs receiptService.IReceiptService,
	utils utils.IUtils,
) *ReceiptHandler {
	return &ReceiptHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		receiptService: rs,
		utils:          utils,
	}
}

// Start mounts the receipt routes on the /api router.
func (h *ReceiptHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	srv.All("/analyze", h.middleware.NewRateLimiter, h.Analyze)

	srv.All("/v1/receipts/analyze", h.middleware.NewRateLimiter, h.Analyze)
	srv.Post("/v1/receipts/parse", h.ParseText)
	srv.Get("/v1/receipts", h.ListReceipts)

	srv.Use("/v1/receipts/ws", wsMiddleware)
	srv.Get("/v1/receipts/ws", websocket.New(h.handleWebSocket))
}
