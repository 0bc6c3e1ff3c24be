package parser

import (
	"ReceiptLedger/internal/entity"
	"regexp"
	"strings"
)

var (
	bizNumberPattern  = regexp.MustCompile(`\d{3}-\d{2}-\d{5}`)
	digitsOnlyPattern = regexp.MustCompile(`^\d+$`)
	datePrefixPattern = regexp.MustCompile(`\d{4}[-./]`)
)

// ExtractStore returns the merchant name, or entity.UnknownStore.
func (p *Parser) ExtractStore(lines []string) string {
	if store, ok := firstOf(lines, p.markedStore, p.keywordStore, p.positionalStore); ok {
		return store
	}
	return entity.UnknownStore
}

func (p *Parser) markedStore(lines []string) (string, bool) {
	if p.merchantRe == nil {
		return "", false
	}
	for _, line := range lines {
		m := p.merchantRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		store := strings.TrimSpace(strings.TrimLeft(m[1], ": \t"))
		if store != "" {
			return store, true
		}
	}
	return "", false
}

func (p *Parser) keywordStore(lines []string) (string, bool) {
	for i := 0; i < min(p.rules.StoreKeywordLines, len(lines)); i++ {
		line := lines[i]
		if !containsAny(line, p.rules.StoreKeywords) {
			continue
		}
		n := runeLen(line)
		if n > 3 && n < 50 &&
			!bizNumberPattern.MatchString(line) &&
			!containsAnyFold(line, p.rules.PhoneMarkers) {
			return line, true
		}
	}
	return "", false
}

func (p *Parser) positionalStore(lines []string) (string, bool) {
	for i := 0; i < min(p.rules.PositionalLines, len(lines)); i++ {
		line := lines[i]
		n := runeLen(line)
		if n > 2 && n < 30 &&
			!digitsOnlyPattern.MatchString(line) &&
			!bizNumberPattern.MatchString(line) &&
			!containsAny(line, p.rules.HeaderExclusions) &&
			!datePrefixPattern.MatchString(line) {
			return line, true
		}
	}
	return "", false
}
