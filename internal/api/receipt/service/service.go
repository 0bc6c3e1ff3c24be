package receiptService

//go:generate mockgen -source=service.go -destination=service_mock.go -package=receiptService

import (
	"ReceiptLedger/internal/api/receipt"
	receiptRepository "ReceiptLedger/internal/api/receipt/repository"
	"ReceiptLedger/internal/entity"
	"ReceiptLedger/pkg/ocr"
	"ReceiptLedger/pkg/parser"
	"ReceiptLedger/pkg/redis"
	"ReceiptLedger/pkg/s3"
	"ReceiptLedger/pkg/sheets"
	"ReceiptLedger/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const DefaultCacheTTL = 30 * 24 * time.Hour

type IReceiptService interface {
	AnalyzeImage(ctx context.Context, image []byte) (receipt.AnalyzeResult, error)
	ParseText(ctx context.Context, text string) entity.ReceiptRecord
	ListReceipts(ctx context.Context, month string) ([]entity.StoredReceipt, error)
}

// Dependencies groups the collaborators of the receipt service. Repository,
// Cache and Archive are optional and may be left nil.
type Dependencies struct {
	Parser     *parser.Parser
	Detector   ocr.TextDetector
	Sheets     sheets.ItfSheets
	Repository receiptRepository.Repository
	Cache      redis.IRedis
	Archive    s3.ItfS3
	Utils      utils.IUtils
	CacheTTL   time.Duration
}

type receiptService struct {
	log        *logrus.Logger
	parser     *parser.Parser
	detector   ocr.TextDetector
	sheets     sheets.ItfSheets
	repository receiptRepository.Repository
	cache      redis.IRedis
	archive    s3.ItfS3
	utils      utils.IUtils
	cacheTTL   time.Duration
}

func NewReceiptService(log *logrus.Logger, deps Dependencies) IReceiptService {
	if deps.Parser == nil {
		deps.Parser = parser.New()
	}
	if deps.Utils == nil {
		deps.Utils = utils.New(0)
	}
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = DefaultCacheTTL
	}

	return &receiptService{
		log:        log,
		parser:     deps.Parser,
		detector:   deps.Detector,
		sheets:     deps.Sheets,
		repository: deps.Repository,
		cache:      deps.Cache,
		archive:    deps.Archive,
		utils:      deps.Utils,
		cacheTTL:   deps.CacheTTL,
	}
}
