package entity

import "time"

type Category string

const (
	CategoryFood      Category = "식비"
	CategoryTransport Category = "교통"
	CategoryShopping  Category = "쇼핑"
	CategoryLiving    Category = "생활"
	CategoryLeisure   Category = "여가"
	CategoryEducation Category = "교육"
	CategoryOther     Category = "기타"
)

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "카드"
	PaymentCash     PaymentMethod = "현금"
	PaymentTransfer PaymentMethod = "계좌이체"
)

const (
	UnknownStore = "미상"
	DateLayout   = "2006-01-02"
)

func IsValidCategory(category Category) bool {
	switch category {
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryLiving,
		CategoryLeisure, CategoryEducation, CategoryOther:
		return true
	default:
		return false
	}
}

func IsValidPayment(payment PaymentMethod) bool {
	switch payment {
	case PaymentCard, PaymentCash, PaymentTransfer:
		return true
	default:
		return false
	}
}

// ReceiptRecord is the parsed result of one receipt. It is created once per
// request and handed to the sheet sink unchanged.
type ReceiptRecord struct {
	Date     string        `json:"date" validate:"required,datetime=2006-01-02"`
	Store    string        `json:"store" validate:"required"`
	Amount   int64         `json:"amount" validate:"gte=0"`
	Category Category      `json:"category" validate:"required"`
	Payment  PaymentMethod `json:"payment" validate:"required"`
}

// Row returns the record in spreadsheet column order: date, store, amount,
// category, payment.
func (r ReceiptRecord) Row() []interface{} {
	return []interface{}{
		r.Date,
		r.Store,
		r.Amount,
		string(r.Category),
		string(r.Payment),
	}
}

// StoredReceipt is a ReceiptRecord mirrored into the ledger database.
type StoredReceipt struct {
	ID            string        `json:"id"`
	RequestID     string        `json:"request_id"`
	Digest        string        `json:"digest"`
	Record        ReceiptRecord `json:"record"`
	TranscriptKey string        `json:"-"`
	TranscriptURL string        `json:"transcript_url,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
