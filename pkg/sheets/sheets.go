package sheets

//go:generate mockgen -source=sheets.go -destination=sheets_mock.go -package=sheets

import (
	"context"
	"errors"
	"fmt"

	"ReceiptLedger/internal/entity"
	"ReceiptLedger/pkg/google"
	"google.golang.org/api/option"
	sheetsAPI "google.golang.org/api/sheets/v4"
)

const (
	DefaultRange     = "A:E"
	valueInputOption = "USER_ENTERED"
)

type ItfSheets interface {
	AppendRecord(ctx context.Context, record entity.ReceiptRecord) error
}

type sheetsClient struct {
	service       *sheetsAPI.Service
	spreadsheetID string
	writeRange    string
}

func New(ctx context.Context, provider google.ItfGoogle, spreadsheetID, writeRange string) (ItfSheets, error) {
	opt, err := provider.ClientOption(ctx, google.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheets credentials: %w", err)
	}
	return NewWithOptions(ctx, spreadsheetID, writeRange, opt)
}

// NewWithOptions builds the client from raw API options. Tests use it to
// point the client at a local server.
func NewWithOptions(ctx context.Context, spreadsheetID, writeRange string, opts ...option.ClientOption) (ItfSheets, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}
	if writeRange == "" {
		writeRange = DefaultRange
	}

	service, err := sheetsAPI.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &sheetsClient{
		service:       service,
		spreadsheetID: spreadsheetID,
		writeRange:    writeRange,
	}, nil
}

func (s *sheetsClient) AppendRecord(ctx context.Context, record entity.ReceiptRecord) error {
	values := &sheetsAPI.ValueRange{
		Values: [][]interface{}{record.Row()},
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, s.writeRange, values).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to spreadsheet %s: %w", s.spreadsheetID, err)
	}

	return nil
}
