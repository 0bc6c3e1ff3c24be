package parser

import (
	"ReceiptLedger/internal/entity"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type Option func(*Parser)

// WithRules replaces the keyword tables.
func WithRules(rules Rules) Option {
	return func(p *Parser) {
		p.rules = rules
	}
}

// WithClock sets the clock used for the default date.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// Parser turns raw OCR text into a ReceiptRecord. It holds no mutable state
// and is safe for concurrent use.
type Parser struct {
	rules      Rules
	now        func() time.Time
	merchantRe *regexp.Regexp
	unitRe     *regexp.Regexp
}

func New(opts ...Option) *Parser {
	p := &Parser{
		rules: DefaultRules(),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.merchantRe = markerPattern(p.rules.MerchantMarkers)
	if p.rules.CurrencyUnit != "" {
		p.unitRe = regexp.MustCompile(`(` + moneyExpr + `)\s*` + regexp.QuoteMeta(p.rules.CurrencyUnit))
	}

	return p
}

func (p *Parser) Parse(text string) entity.ReceiptRecord {
	lines := NormalizeLines(text)
	store := p.ExtractStore(lines)

	return entity.ReceiptRecord{
		Date:     p.ExtractDate(lines),
		Store:    store,
		Amount:   p.ExtractAmount(lines),
		Category: p.Categorize(store, text),
		Payment:  p.DetectPayment(text),
	}
}

// NormalizeLines splits OCR output into trimmed, non-empty lines in reading
// order.
func NormalizeLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// firstOf runs the rules in priority order and returns the first match.
func firstOf[T any](lines []string, rules ...func([]string) (T, bool)) (T, bool) {
	for _, r := range rules {
		if v, ok := r(lines); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func markerPattern(markers []string) *regexp.Regexp {
	if len(markers) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		quoted = append(quoted, regexp.QuoteMeta(m))
	}
	return regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)[:\s]*(.+)`)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func containsAnyFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
