package receiptRepository

import (
	"database/sql"
	"testing"
	"time"

	"ReceiptLedger/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestMakeStoredReceipt(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 10, 22, 0, 0, time.UTC)

	got := makeStoredReceipt(ReceiptDB{
		ID:          sql.NullString{String: "01HV", Valid: true},
		RequestID:   sql.NullString{String: "req-1", Valid: true},
		Digest:      sql.NullString{String: "abc", Valid: true},
		ReceiptDate: sql.NullString{String: "2024-03-15", Valid: true},
		Store:       sql.NullString{String: "이마트", Valid: true},
		Amount:      sql.NullInt64{Int64: 12000, Valid: true},
		Category:    sql.NullString{String: "쇼핑", Valid: true},
		Payment:     sql.NullString{String: "현금", Valid: true},
		CreatedAt:   createdAt,
	})

	assert.Equal(t, entity.StoredReceipt{
		ID:        "01HV",
		RequestID: "req-1",
		Digest:    "abc",
		Record: entity.ReceiptRecord{
			Date:     "2024-03-15",
			Store:    "이마트",
			Amount:   12000,
			Category: entity.CategoryShopping,
			Payment:  entity.PaymentCash,
		},
		CreatedAt: createdAt,
	}, got)
}
