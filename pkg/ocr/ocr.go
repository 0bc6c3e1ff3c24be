package ocr

import "context"

//go:generate mockgen -source=ocr.go -destination=ocr_mock.go -package=ocr

// TextDetector returns the full text recognised in an image. An image with no
// text yields "" and a nil error.
type TextDetector interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}

const (
	ProviderVision = "vision"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)
