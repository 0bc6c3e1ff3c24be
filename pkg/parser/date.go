package parser

import (
	"ReceiptLedger/internal/entity"
	"fmt"
	"regexp"
	"strconv"
)

var (
	anchoredDatePattern  = regexp.MustCompile(`(\d{4})[-./년](\d{1,2})[-./월](\d{1,2})`)
	fullYearDatePattern  = regexp.MustCompile(`(\d{4})[-./년\s](\d{1,2})[-./월\s](\d{1,2})일?`)
	shortYearDatePattern = regexp.MustCompile(`(\d{2})[-./년\s](\d{1,2})[-./월\s](\d{1,2})일?`)
)

// ExtractDate returns the transaction date as YYYY-MM-DD. Lines carrying a
// transaction/approval anchor win over bare date patterns; with no match the
// current date is used.
func (p *Parser) ExtractDate(lines []string) string {
	if date, ok := firstOf(lines, p.anchoredDate, p.patternDate); ok {
		return date
	}
	return p.now().Format(entity.DateLayout)
}

func (p *Parser) anchoredDate(lines []string) (string, bool) {
	for _, line := range lines {
		if !containsAny(line, p.rules.DateAnchors) {
			continue
		}
		if m := anchoredDatePattern.FindStringSubmatch(line); m != nil {
			if date, ok := formatDate(m[1], m[2], m[3]); ok {
				return date, true
			}
		}
	}
	return "", false
}

func (p *Parser) patternDate(lines []string) (string, bool) {
	for _, line := range lines {
		for _, pattern := range []*regexp.Regexp{fullYearDatePattern, shortYearDatePattern} {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if date, ok := formatDate(m[1], m[2], m[3]); ok {
				return date, true
			}
		}
	}
	return "", false
}

// formatDate pads month and day and expands two-digit years with a fixed
// "20" prefix. Only 1..12 and 1..31 are checked.
func formatDate(year, month, day string) (string, bool) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return "", false
	}
	if len(year) == 2 {
		year = "20" + year
	}
	return fmt.Sprintf("%s-%02d-%02d", year, m, d), true
}
