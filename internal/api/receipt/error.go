package receipt

import "ReceiptLedger/pkg/response"

var (
	ErrNoFileProvided   = response.NewError(400, "영수증 이미지가 필요합니다.")
	ErrNoTextDetected   = response.NewError(400, "영수증에서 텍스트를 인식할 수 없습니다.")
	ErrInvalidImage     = response.NewError(400, "유효한 이미지 파일이 아닙니다.")
	ErrInvalidMonth     = response.NewError(400, "invalid month, expected YYYY-MM")
	ErrReceiptNotFound  = response.NewError(404, "receipt not found")
	ErrMethodNotAllowed = response.NewError(405, "Method not allowed")
	ErrUpstreamFailure  = response.NewError(500, "처리 중 오류가 발생했습니다.")
	ErrMirrorDisabled   = response.NewError(503, "ledger mirror is not configured")
)
