package ocr

import (
	"context"
	"encoding/base64"
	"fmt"

	"ReceiptLedger/pkg/google"
	vision "google.golang.org/api/vision/v1"
)

type VisionDetector struct {
	service *vision.Service
}

func NewVisionDetector(ctx context.Context, provider google.ItfGoogle) (*VisionDetector, error) {
	opt, err := provider.ClientOption(ctx, google.CloudVisionScope)
	if err != nil {
		return nil, fmt.Errorf("failed to build vision credentials: %w", err)
	}

	service, err := vision.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}

	return NewVisionDetectorWithService(service), nil
}

func NewVisionDetectorWithService(service *vision.Service) *VisionDetector {
	return &VisionDetector{service: service}
}

// DetectText runs TEXT_DETECTION and returns the first annotation, which
// Vision fills with the whole recognised text.
func (d *VisionDetector) DetectText(ctx context.Context, image []byte) (string, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []*vision.Feature{{Type: "TEXT_DETECTION"}},
			},
		},
	}

	resp, err := d.service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vision annotate: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}

	result := resp.Responses[0]
	if result.Error != nil && result.Error.Message != "" {
		return "", fmt.Errorf("vision annotate: %s", result.Error.Message)
	}

	if len(result.TextAnnotations) == 0 {
		return "", nil
	}

	return result.TextAnnotations[0].Description, nil
}
