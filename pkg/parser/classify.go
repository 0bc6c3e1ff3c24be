package parser

import (
	"ReceiptLedger/internal/entity"
	"strings"
)

// Categorize returns the first category, in table order, with a keyword
// found in the store name or receipt text.
func (p *Parser) Categorize(store, text string) entity.Category {
	combined := strings.ToLower(store + " " + text)
	for _, rule := range p.rules.Categories {
		if containsAny(combined, rule.Keywords) {
			return rule.Category
		}
	}
	return entity.CategoryOther
}

func (p *Parser) DetectPayment(text string) entity.PaymentMethod {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, p.rules.CashKeywords):
		return entity.PaymentCash
	case containsAny(lower, p.rules.TransferKeywords):
		return entity.PaymentTransfer
	default:
		return entity.PaymentCard
	}
}
