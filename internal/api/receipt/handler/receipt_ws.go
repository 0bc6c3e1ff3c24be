package receiptHandler

import (
	"ReceiptLedger/internal/api/receipt"
	contextPkg "ReceiptLedger/pkg/context"
	"ReceiptLedger/pkg/handlerUtil"
	"ReceiptLedger/pkg/response"
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

const wsReadTimeout = 120 * time.Second

// handleWebSocket treats every binary frame as one receipt image and answers
// with the same envelope as the HTTP endpoint.
func (h *ReceiptHandler) handleWebSocket(c *websocket.Conn) {
	requestID := contextPkg.RequestIDFromLocal(c.Locals(contextPkg.FiberRequestIDKey))
	errHandler := handlerUtil.New(h.log)

	h.log.WithField("request_id", requestID).Info("Receipt WebSocket client connected")
	defer h.log.WithField("request_id", requestID).Info("Receipt WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Receipt WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		reply := h.processFrame(requestID, message, errHandler)

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(reply); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}

func (h *ReceiptHandler) processFrame(requestID string, frame []byte, errHandler *handlerUtil.ErrorHandler) interface{} {
	c, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), analyzeTimeout)
	defer cancel()

	if err := h.utils.ValidateImageBytes(frame); err != nil {
		_, body := errHandler.Resolve(requestID, response.WithDetails(receipt.ErrInvalidImage, err), "ws", "validate_frame")
		return body
	}

	result, err := h.receiptService.AnalyzeImage(c, frame)
	if err != nil {
		_, body := errHandler.Resolve(requestID, err, "ws", "analyze_receipt")
		return body
	}

	return receipt.NewAnalyzeResponse(result)
}
