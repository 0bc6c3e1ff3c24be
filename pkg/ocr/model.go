package ocr

import (
	"context"
	"fmt"
	"strings"
)

const noTextMarker = "NO_TEXT"

const transcribePrompt = `
Transcribe every piece of text printed on this receipt exactly as it appears.
Keep the original line breaks and reading order, one printed line per output line.
Do not translate, summarise, correct or add anything.
If the image contains no readable text, answer with exactly: ` + noTextMarker

// ImageAnalyzer is a multimodal model client. gemini.IGemini and
// openai.IChatGPT both satisfy it.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error)
}

// ModelDetector asks a multimodal model for a verbatim transcription. Field
// extraction still happens in the heuristic parser.
type ModelDetector struct {
	name   string
	client ImageAnalyzer
}

func NewModelDetector(name string, client ImageAnalyzer) *ModelDetector {
	return &ModelDetector{name: name, client: client}
}

func (d *ModelDetector) DetectText(ctx context.Context, image []byte) (string, error) {
	text, err := d.client.AnalyzeImage(ctx, image, transcribePrompt)
	if err != nil {
		return "", fmt.Errorf("%s transcribe: %w", d.name, err)
	}

	text = strings.TrimSpace(strings.Trim(strings.TrimSpace(text), "`"))
	if text == "" || text == noTextMarker {
		return "", nil
	}

	return text, nil
}
