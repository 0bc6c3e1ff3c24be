package receiptRepository

import (
	"ReceiptLedger/internal/api/receipt"
	"ReceiptLedger/internal/entity"
	contextPkg "ReceiptLedger/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ReceiptDB struct {
	ID            sql.NullString `db:"id"`
	RequestID     sql.NullString `db:"request_id"`
	Digest        sql.NullString `db:"digest"`
	ReceiptDate   sql.NullString `db:"receipt_date"`
	Store         sql.NullString `db:"store"`
	Amount        sql.NullInt64  `db:"amount"`
	Category      sql.NullString `db:"category"`
	Payment       sql.NullString `db:"payment"`
	TranscriptKey sql.NullString `db:"transcript_key"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (r *receiptRepository) CreateReceipt(c context.Context, stored entity.StoredReceipt) error {
	requestID := contextPkg.GetRequestID(c)

	createdAt := stored.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	argsKV := map[string]interface{}{
		"id":             stored.ID,
		"request_id":     stored.RequestID,
		"digest":         stored.Digest,
		"receipt_date":   stored.Record.Date,
		"store":          stored.Record.Store,
		"amount":         stored.Record.Amount,
		"category":       string(stored.Record.Category),
		"payment":        string(stored.Record.Payment),
		"transcript_key": sql.NullString{String: stored.TranscriptKey, Valid: stored.TranscriptKey != ""},
		"created_at":     createdAt,
	}

	query, args, err := sqlx.Named(queryCreateReceipt, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateReceipt")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating receipt")
		return err
	}

	return nil
}

func (r *receiptRepository) GetReceiptByDigest(c context.Context, digest string) (entity.StoredReceipt, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ReceiptDB

	query, args, err := sqlx.Named(queryGetReceiptByDigest, map[string]interface{}{
		"digest": digest,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReceiptByDigest named query preparation err")
		return entity.StoredReceipt{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.StoredReceipt{}, receipt.ErrReceiptNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReceiptByDigest execution err")
		return entity.StoredReceipt{}, err
	}

	return makeStoredReceipt(row), nil
}

// GetReceiptsByMonth returns the receipts whose receipt date falls in month
// (YYYY-MM), oldest first.
func (r *receiptRepository) GetReceiptsByMonth(c context.Context, month string) ([]entity.StoredReceipt, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ReceiptDB

	query, args, err := sqlx.Named(queryGetReceiptsByMonth, map[string]interface{}{
		"month_prefix": month + "-%",
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReceiptsByMonth named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReceiptsByMonth execution err")
		return nil, err
	}

	receipts := make([]entity.StoredReceipt, 0, len(rows))
	for _, row := range rows {
		receipts = append(receipts, makeStoredReceipt(row))
	}

	return receipts, nil
}

func makeStoredReceipt(row ReceiptDB) entity.StoredReceipt {
	return entity.StoredReceipt{
		ID:        row.ID.String,
		RequestID: row.RequestID.String,
		Digest:    row.Digest.String,
		Record: entity.ReceiptRecord{
			Date:     row.ReceiptDate.String,
			Store:    row.Store.String,
			Amount:   row.Amount.Int64,
			Category: entity.Category(row.Category.String),
			Payment:  entity.PaymentMethod(row.Payment.String),
		},
		TranscriptKey: row.TranscriptKey.String,
		CreatedAt:     row.CreatedAt,
	}
}
