package receiptHandler

import (
	"ReceiptLedger/internal/api/receipt"
	"ReceiptLedger/internal/entity"
	contextPkg "ReceiptLedger/pkg/context"
	"ReceiptLedger/pkg/handlerUtil"
	"ReceiptLedger/pkg/log"
	"ReceiptLedger/pkg/response"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	analyzeTimeout = 30 * time.Second
	defaultTimeout = 10 * time.Second
)

func setCORS(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	ctx.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
}

func (h *ReceiptHandler) Analyze(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	setCORS(ctx)

	switch ctx.Method() {
	case fiber.MethodOptions:
		return ctx.Status(fiber.StatusOK).Send(nil)
	case fiber.MethodPost:
	default:
		return errHandler.Handle(ctx, requestID, receipt.ErrMethodNotAllowed, ctx.Path(), "analyze_receipt")
	}

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), analyzeTimeout)
	defer cancel()

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing analyze receipt request")

	file, err := ctx.FormFile("receipt")
	if err != nil || file == nil {
		return errHandler.Handle(ctx, requestID, receipt.ErrNoFileProvided, ctx.Path(), "read_form_file")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"file_name":  file.Filename,
		"file_size":  file.Size,
	}).Debug("Processing file upload")

	image, err := h.utils.ReadImageFile(file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, response.WithDetails(receipt.ErrInvalidImage, err), ctx.Path(), "read_image_file")
	}

	result, err := h.receiptService.AnalyzeImage(c, image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_receipt")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, receipt.NewAnalyzeResponse(result))
	}
}

func (h *ReceiptHandler) ParseText(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), defaultTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req receipt.ParseTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	record := h.receiptService.ParseText(c, req.Text)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, receipt.AnalyzeResponse{
		Success: true,
		Message: receipt.MessageParsed,
		Data:    record,
	})
}

func (h *ReceiptHandler) ListReceipts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), defaultTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	query := receipt.ListQuery{
		Month: ctx.Query("month", time.Now().Format("2006-01")),
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	receipts, err := h.receiptService.ListReceipts(c, query.Month)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_receipts")
	}

	if receipts == nil {
		receipts = []entity.StoredReceipt{}
	}

	var total int64
	for _, r := range receipts {
		total += r.Record.Amount
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, receipt.ListResponse{
			Month:    query.Month,
			Total:    total,
			Receipts: receipts,
		})
	}
}
