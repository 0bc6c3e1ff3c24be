package parser

import "ReceiptLedger/internal/entity"

// CategoryRule maps a category to the keywords that select it. Rules are
// evaluated in slice order and the first rule with a matching keyword wins.
type CategoryRule struct {
	Category entity.Category
	Keywords []string
}

// Rules holds every locale-specific table the extractors consult. The
// cascades themselves never hard-code a keyword.
type Rules struct {
	DateAnchors []string

	MerchantMarkers   []string
	StoreKeywords     []string
	PhoneMarkers      []string
	HeaderExclusions  []string
	StoreKeywordLines int
	PositionalLines   int

	TotalKeywords      []string
	SplitTotal         [2]string
	CurrencyUnit       string
	CurrencyExclusions []string
	TrailingLines      int
	TrailingMin        int64
	TrailingMax        int64

	Categories []CategoryRule

	CashKeywords     []string
	TransferKeywords []string
}

// DefaultRules returns the Korean retail receipt tables.
func DefaultRules() Rules {
	return Rules{
		DateAnchors: []string{"거래일시", "승인일시"},

		MerchantMarkers:   []string{"가맹점", "상호"},
		StoreKeywords:     []string{"마트", "점", "식당", "카페", "커피", "치킨", "피자", "버거", "약국", "병원", "편의점"},
		PhoneMarkers:      []string{"tel", "전화", "연락처"},
		HeaderExclusions:  []string{"영수증", "receipt", "신용승인", "고객용", "단말기"},
		StoreKeywordLines: 10,
		PositionalLines:   5,

		TotalKeywords:      []string{"합계", "총액", "총계", "total", "받을금액", "카드금액", "승인금액", "결제금액", "지불액"},
		SplitTotal:         [2]string{"합", "계"},
		CurrencyUnit:       "원",
		CurrencyExclusions: []string{"요일", "월"},
		TrailingLines:      10,
		TrailingMin:        1000,
		TrailingMax:        1000000,

		Categories: []CategoryRule{
			{
				Category: entity.CategoryFood,
				Keywords: []string{
					"마트", "마켓", "슈퍼", "식당", "음식점", "카페", "커피", "베이커리",
					"치킨", "피자", "버거", "맥도날드", "롯데리아", "버거킹", "kfc",
					"편의점", "cu", "gs25", "세븐일레븐", "7-eleven",
					"이마트", "롯데마트", "홈플러스", "코스트코", "쿠팡",
					"배달", "요기요", "배달의민족", "쿠팡이츠",
					"스타벅스", "투썸", "이디야", "할리스", "탕",
				},
			},
			{
				Category: entity.CategoryTransport,
				Keywords: []string{
					"주유소", "sk", "gs칼텍스", "현대오일", "s-oil",
					"택시", "카카오택시", "버스", "지하철", "전철",
					"주차", "주차장", "파킹", "톨게이트", "통행료",
				},
			},
			{
				Category: entity.CategoryShopping,
				Keywords: []string{
					"옷", "의류", "패션", "신발", "가방", "백화점", "아울렛",
					"화장품", "올리브영", "다이소", "쿠팡", "지마켓", "무신사",
				},
			},
			{
				Category: entity.CategoryLiving,
				Keywords: []string{"약국", "병원", "의원", "치과", "세탁", "미용실", "헤어샵"},
			},
			{
				Category: entity.CategoryLeisure,
				Keywords: []string{"영화", "cgv", "롯데시네마", "메가박스", "노래방", "pc방", "헬스"},
			},
			{
				Category: entity.CategoryEducation,
				Keywords: []string{"학원", "교습소", "서점", "문고", "교보", "도서", "인강", "수강료", "교재"},
			},
		},

		CashKeywords:     []string{"현금", "cash"},
		TransferKeywords: []string{"계좌", "이체"},
	}
}
