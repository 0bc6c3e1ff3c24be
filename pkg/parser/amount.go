package parser

import (
	"regexp"
	"strconv"
	"strings"
)

const moneyExpr = `\d{1,3}(?:,\d{3})+|\d{4,6}`

var (
	moneyPattern            = regexp.MustCompile(moneyExpr)
	groupedMoneyPattern     = regexp.MustCompile(`\d{1,3}(?:,\d{3})+`)
	longNumberPrefixPattern = regexp.MustCompile(`^\*?\d{10,}`)
)

// ExtractAmount returns the payable total, or 0 when no rule finds one.
func (p *Parser) ExtractAmount(lines []string) int64 {
	amount, _ := firstOf(lines,
		p.splitTotalAmount,
		p.keywordAmount,
		p.unitAmount,
		p.trailingMaxAmount,
	)
	return amount
}

// splitTotalAmount handles "합계" recognised as two single-character lines,
// with the figure on the line after.
func (p *Parser) splitTotalAmount(lines []string) (int64, bool) {
	for i := 0; i+2 < len(lines); i++ {
		if lines[i] != p.rules.SplitTotal[0] || lines[i+1] != p.rules.SplitTotal[1] {
			continue
		}
		if v, ok := parseMoney(moneyPattern.FindString(lines[i+2])); ok {
			return v, true
		}
	}
	return 0, false
}

func (p *Parser) keywordAmount(lines []string) (int64, bool) {
	for i, line := range lines {
		if !containsAny(line, p.rules.TotalKeywords) {
			continue
		}
		if v, ok := parseMoney(moneyPattern.FindString(line)); ok {
			return v, true
		}
		if i+1 < len(lines) {
			if v, ok := parseMoney(moneyPattern.FindString(lines[i+1])); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func (p *Parser) unitAmount(lines []string) (int64, bool) {
	if p.unitRe == nil {
		return 0, false
	}
	for _, line := range lines {
		if !strings.Contains(line, p.rules.CurrencyUnit) || containsAny(line, p.rules.CurrencyExclusions) {
			continue
		}
		if m := p.unitRe.FindStringSubmatch(line); m != nil {
			if v, ok := parseMoney(m[1]); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// trailingMaxAmount keeps the largest grouped figure in [TrailingMin,
// TrailingMax) among the last lines, skipping masked card numbers, business
// registration numbers and long numeric ids.
func (p *Parser) trailingMaxAmount(lines []string) (int64, bool) {
	var best int64
	start := max(0, len(lines)-p.rules.TrailingLines)
	for i := len(lines) - 1; i >= start; i-- {
		line := lines[i]
		if strings.HasPrefix(line, "*") ||
			bizNumberPattern.MatchString(line) ||
			longNumberPrefixPattern.MatchString(line) {
			continue
		}

		v, ok := parseMoney(groupedMoneyPattern.FindString(line))
		if !ok {
			continue
		}
		if v >= p.rules.TrailingMin && v < p.rules.TrailingMax && v > best {
			best = v
		}
	}
	return best, best > 0
}

// parseMoney strips grouping commas. Zero counts as no match so the cascade
// moves on to the next rule.
func parseMoney(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
