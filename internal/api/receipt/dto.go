package receipt

import "ReceiptLedger/internal/entity"

const (
	MessageRecorded  = "가계부에 기록되었습니다."
	MessageDuplicate = "이미 기록된 영수증입니다."
	MessageParsed    = "파싱 결과입니다."
)

type AnalyzeResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    entity.ReceiptRecord `json:"data"`
}

type ParseTextRequest struct {
	Text string `json:"text" validate:"required"`
}

type ListQuery struct {
	Month string `query:"month" validate:"required,datetime=2006-01"`
}

type ListResponse struct {
	Month    string                 `json:"month"`
	Total    int64                  `json:"total"`
	Receipts []entity.StoredReceipt `json:"receipts"`
}

// AnalyzeResult is what the service hands back for one image. Duplicate is
// set when the image digest was already recorded and nothing new was written.
type AnalyzeResult struct {
	Record    entity.ReceiptRecord
	Duplicate bool
}

func NewAnalyzeResponse(result AnalyzeResult) AnalyzeResponse {
	message := MessageRecorded
	if result.Duplicate {
		message = MessageDuplicate
	}
	return AnalyzeResponse{
		Success: true,
		Message: message,
		Data:    result.Record,
	}
}
