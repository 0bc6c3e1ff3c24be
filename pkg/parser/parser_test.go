package parser

import (
	"ReceiptLedger/internal/entity"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

func newTestParser() *Parser {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"blank lines only", "\n  \n\t\n", []string{}},
		{"trims and keeps order", "  이마트 \n\n 합계 10,000\r\n  \n카드", []string{"이마트", "합계 10,000", "카드"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLines(tt.input))
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "anchored line wins over earlier date",
			lines: []string{"2023-01-01 개업", "거래일시 2024-03-15 10:22"},
			want:  "2024-03-15",
		},
		{
			name:  "anchored korean markers",
			lines: []string{"승인일시 2024년3월5일 12:00"},
			want:  "2024-03-05",
		},
		{
			name:  "two digit year gets 20 prefix",
			lines: []string{"POS 01", "23.11.05 14:30"},
			want:  "2023-11-05",
		},
		{
			name:  "whitespace separators",
			lines: []string{"2024 3 7"},
			want:  "2024-03-07",
		},
		{
			name:  "invalid month is skipped",
			lines: []string{"2024-13-40", "2024/02/09"},
			want:  "2024-02-09",
		},
		{
			name:  "day 31 accepted for any month",
			lines: []string{"2024.02.31"},
			want:  "2024-02-31",
		},
		{
			name:  "anchor with invalid date falls back to pattern",
			lines: []string{"거래일시 2024-00-10", "2024-05-06"},
			want:  "2024-05-06",
		},
		{
			name:  "no separators uses today",
			lines: []string{"20241015"},
			want:  "2026-10-18",
		},
		{
			name:  "no lines uses today",
			lines: nil,
			want:  "2026-10-18",
		},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ExtractDate(tt.lines))
		})
	}
}

func TestExtractStore(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "merchant marker",
			lines: []string{"영수증", "가맹점: 스타벅스 강남점"},
			want:  "스타벅스 강남점",
		},
		{
			name:  "business name marker",
			lines: []string{"상호 김밥천국"},
			want:  "김밥천국",
		},
		{
			name:  "marker without name falls through",
			lines: []string{"가맹점", "이마트 성수점"},
			want:  "이마트 성수점",
		},
		{
			name: "keyword line skips business number and phone",
			lines: []string{
				"[신용승인]",
				"사업자 123-45-67890 홍콩반점",
				"TEL 02-123-4567 본점",
				"교촌치킨 역삼점",
			},
			want: "교촌치킨 역삼점",
		},
		{
			name:  "phone marker is case insensitive",
			lines: []string{"Tel. 02-555-0000 커피", "커피빈 역삼점"},
			want:  "커피빈 역삼점",
		},
		{
			name:  "positional fallback",
			lines: []string{"신용승인", "12345", "123-45-67890", "2024-03-15 10:22", "Blue Bottle"},
			want:  "Blue Bottle",
		},
		{
			name:  "positional only looks at first five lines",
			lines: []string{"영수증", "영수증", "영수증", "영수증", "영수증", "GOOD STORE"},
			want:  entity.UnknownStore,
		},
		{
			name:  "short lines are ignored",
			lines: []string{"AB", "점"},
			want:  entity.UnknownStore,
		},
		{
			name:  "empty",
			lines: nil,
			want:  entity.UnknownStore,
		},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ExtractStore(tt.lines))
		})
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int64
	}{
		{
			name:  "split total keyword",
			lines: []string{"아메리카노", "합", "계", "15,000"},
			want:  15000,
		},
		{
			name:  "keyword on same line",
			lines: []string{"결제금액 12,500원"},
			want:  12500,
		},
		{
			name:  "keyword with amount on next line",
			lines: []string{"합계", "8,900"},
			want:  8900,
		},
		{
			name:  "first keyword line wins",
			lines: []string{"합계 3,000", "카드금액 9,000"},
			want:  3000,
		},
		{
			name:  "bare digit run",
			lines: []string{"total 45000"},
			want:  45000,
		},
		{
			name:  "won unit skips date lines",
			lines: []string{"3월 15일 2,000원", "5,500 원"},
			want:  5500,
		},
		{
			name:  "trailing maximum within range",
			lines: []string{"999", "1,500", "2,000,000"},
			want:  1500,
		},
		{
			name: "trailing skips masked and long numbers",
			lines: []string{
				"3,000",
				"*1,234,567",
				"1234567890123 9,999",
				"123-45-67890 5,000",
			},
			want: 3000,
		},
		{
			name:  "trailing only considers last ten lines",
			lines: []string{"9,000", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
			want:  0,
		},
		{
			name:  "empty",
			lines: nil,
			want:  0,
		},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ExtractAmount(tt.lines))
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name  string
		store string
		text  string
		want  entity.Category
	}{
		{"starbucks", "스타벅스 강남점", "가맹점: 스타벅스 강남점", entity.CategoryFood},
		{"food wins over shopping", "카페 다이소", "카페 다이소", entity.CategoryFood},
		{"shopping", "다이소 성수점", "다이소 성수점", entity.CategoryShopping},
		{"transport", "GS칼텍스 주유", "", entity.CategoryTransport},
		{"living", "온누리약국", "", entity.CategoryLiving},
		{"leisure is case folded", "CGV 용산", "", entity.CategoryLeisure},
		{"education", "종로학원", "", entity.CategoryEducation},
		{"other", "ABC", "", entity.CategoryOther},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Categorize(tt.store, tt.text))
		})
	}
}

func TestDetectPayment(t *testing.T) {
	tests := []struct {
		text string
		want entity.PaymentMethod
	}{
		{"현금영수증", entity.PaymentCash},
		{"CASH", entity.PaymentCash},
		{"계좌이체 완료", entity.PaymentTransfer},
		{"현금 계좌", entity.PaymentCash},
		{"신한카드 승인", entity.PaymentCard},
		{"", entity.PaymentCard},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, p.DetectPayment(tt.text))
		})
	}
}

func TestParse(t *testing.T) {
	p := newTestParser()

	t.Run("empty input uses defaults", func(t *testing.T) {
		assert.Equal(t, entity.ReceiptRecord{
			Date:     "2026-10-18",
			Store:    entity.UnknownStore,
			Amount:   0,
			Category: entity.CategoryOther,
			Payment:  entity.PaymentCard,
		}, p.Parse(""))
	})

	t.Run("card receipt", func(t *testing.T) {
		text := strings.Join([]string{
			"스타벅스 강남점",
			"사업자 123-45-67890",
			"TEL 02-555-1234",
			"거래일시 2024-03-15 10:22",
			"아메리카노 2 9,000",
			"합계 9,000",
			"신한카드 승인",
		}, "\n")

		assert.Equal(t, entity.ReceiptRecord{
			Date:     "2024-03-15",
			Store:    "스타벅스 강남점",
			Amount:   9000,
			Category: entity.CategoryFood,
			Payment:  entity.PaymentCard,
		}, p.Parse(text))
	})

	t.Run("cash receipt with split total", func(t *testing.T) {
		text := "상호: 김밥천국\n23.11.05\n합\n계\n15,000\n현금"

		got := p.Parse(text)
		assert.Equal(t, "김밥천국", got.Store)
		assert.Equal(t, "2023-11-05", got.Date)
		assert.Equal(t, int64(15000), got.Amount)
		assert.Equal(t, entity.PaymentCash, got.Payment)
	})
}

func TestWithRules(t *testing.T) {
	rules := DefaultRules()
	rules.Categories = []CategoryRule{{Category: entity.CategoryLeisure, Keywords: []string{"bowling"}}}
	rules.TotalKeywords = []string{"due"}

	p := New(WithRules(rules), WithClock(func() time.Time { return fixedNow }))

	got := p.Parse("Bowling Alley\nAmount due 23,000")
	assert.Equal(t, entity.CategoryLeisure, got.Category)
	assert.Equal(t, int64(23000), got.Amount)
}

func TestParseInvariants(t *testing.T) {
	datePattern := regexp.MustCompile(`^\d{4}-(\d{2})-(\d{2})$`)
	alphabet := []rune("0123456789,.-/ 년월일원합계점*\n가맹점:현금TEL")
	rng := rand.New(rand.NewSource(42))
	p := newTestParser()

	for i := 0; i < 500; i++ {
		n := rng.Intn(120)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}

		got := p.Parse(b.String())

		m := datePattern.FindStringSubmatch(got.Date)
		require.NotNil(t, m, "date %q from %q", got.Date, b.String())
		assert.True(t, m[1] >= "01" && m[1] <= "12", "month in %q", got.Date)
		assert.True(t, m[2] >= "01" && m[2] <= "31", "day in %q", got.Date)
		assert.GreaterOrEqual(t, got.Amount, int64(0))
		assert.True(t, entity.IsValidCategory(got.Category))
		assert.True(t, entity.IsValidPayment(got.Payment))
		assert.NotEmpty(t, got.Store)
	}
}
