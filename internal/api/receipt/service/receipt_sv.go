package receiptService

import (
	"ReceiptLedger/internal/api/receipt"
	"ReceiptLedger/internal/entity"
	contextPkg "ReceiptLedger/pkg/context"
	"ReceiptLedger/pkg/response"
	"ReceiptLedger/pkg/s3"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *receiptService) AnalyzeImage(ctx context.Context, image []byte) (receipt.AnalyzeResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(image) == 0 {
		return receipt.AnalyzeResult{}, receipt.ErrNoFileProvided
	}

	digest := s.utils.Digest(image)

	if record, ok := s.findRecorded(ctx, digest); ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"digest":     digest,
		}).Info("Receipt already recorded, skipping OCR")
		return receipt.AnalyzeResult{Record: record, Duplicate: true}, nil
	}

	text, err := s.detector.DetectText(ctx, image)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Text detection failed")
		return receipt.AnalyzeResult{}, response.WithDetails(receipt.ErrUpstreamFailure, err)
	}

	if strings.TrimSpace(text) == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("No text detected on receipt")
		return receipt.AnalyzeResult{}, receipt.ErrNoTextDetected
	}

	record := s.parser.Parse(text)

	if err := s.sheets.AppendRecord(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to append receipt to spreadsheet")
		return receipt.AnalyzeResult{}, response.WithDetails(receipt.ErrUpstreamFailure, err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"date":       record.Date,
		"store":      record.Store,
		"amount":     record.Amount,
		"category":   record.Category,
		"payment":    record.Payment,
	}).Info("Receipt recorded")

	s.recordSideEffects(ctx, digest, text, record)

	return receipt.AnalyzeResult{Record: record}, nil
}

func (s *receiptService) ParseText(ctx context.Context, text string) entity.ReceiptRecord {
	record := s.parser.Parse(text)

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"store":      record.Store,
		"amount":     record.Amount,
	}).Debug("Parsed receipt text")

	return record
}

func (s *receiptService) ListReceipts(ctx context.Context, month string) ([]entity.StoredReceipt, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.repository == nil {
		return nil, receipt.ErrMirrorDisabled
	}

	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, receipt.ErrInvalidMonth
	}

	repo, err := s.repository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	receipts, err := repo.Receipt.GetReceiptsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		for i := range receipts {
			if receipts[i].TranscriptKey == "" {
				continue
			}
			url, err := s.archive.PresignUrl(ctx, receipts[i].TranscriptKey)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"key":        receipts[i].TranscriptKey,
					"error":      err.Error(),
				}).Warn("Failed to presign transcript url")
				continue
			}
			receipts[i].TranscriptURL = url
		}
	}

	return receipts, nil
}

// findRecorded looks the digest up in the cache first and then in the ledger
// mirror. Lookup failures are treated as misses.
func (s *receiptService) findRecorded(ctx context.Context, digest string) (entity.ReceiptRecord, bool) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.cache != nil {
		record, err := s.cache.GetRecord(ctx, digest)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Receipt cache lookup failed")
		} else if record != nil {
			return *record, true
		}
	}

	if s.repository != nil {
		repo, err := s.repository.NewClient(false)
		if err != nil {
			return entity.ReceiptRecord{}, false
		}

		stored, err := repo.Receipt.GetReceiptByDigest(ctx, digest)
		if err == nil {
			return stored.Record, true
		}
		if !errors.Is(err, receipt.ErrReceiptNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Receipt mirror lookup failed")
		}
	}

	return entity.ReceiptRecord{}, false
}

// recordSideEffects archives the transcript, mirrors the record and caches the
// digest. The spreadsheet row is already written, so failures here are only
// logged.
func (s *receiptService) recordSideEffects(ctx context.Context, digest, text string, record entity.ReceiptRecord) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate ULID")
		id = digest[:26]
	}

	var transcriptKey string
	if s.archive != nil {
		key := s3.TranscriptKey(record.Date, id)
		if _, err := s.archive.UploadTranscript(ctx, key, text); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to archive receipt transcript")
		} else {
			transcriptKey = key
		}
	}

	if s.repository != nil {
		if err := s.mirror(ctx, entity.StoredReceipt{
			ID:            id,
			RequestID:     requestID,
			Digest:        digest,
			Record:        record,
			TranscriptKey: transcriptKey,
			CreatedAt:     time.Now(),
		}); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to mirror receipt to ledger database")
		}
	}

	if s.cache != nil {
		if err := s.cache.SetRecord(ctx, digest, record, s.cacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache receipt digest")
		}
	}
}

func (s *receiptService) mirror(ctx context.Context, stored entity.StoredReceipt) error {
	repo, err := s.repository.NewClient(true)
	if err != nil {
		return err
	}

	if err := repo.Receipt.CreateReceipt(ctx, stored); err != nil {
		_ = repo.Rollback()
		return err
	}

	return repo.Commit()
}
