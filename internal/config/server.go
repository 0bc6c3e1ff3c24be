package config

import (
	"ReceiptLedger/database/postgres"
	receiptHandler "ReceiptLedger/internal/api/receipt/handler"
	receiptRepository "ReceiptLedger/internal/api/receipt/repository"
	receiptService "ReceiptLedger/internal/api/receipt/service"
	"ReceiptLedger/internal/middleware"
	"ReceiptLedger/pkg/gemini"
	"ReceiptLedger/pkg/google"
	"ReceiptLedger/pkg/ocr"
	"ReceiptLedger/pkg/openai"
	"ReceiptLedger/pkg/parser"
	"ReceiptLedger/pkg/redis"
	"ReceiptLedger/pkg/s3"
	"ReceiptLedger/pkg/sheets"
	"ReceiptLedger/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	env            Env
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	parser         *parser.Parser
	handlers       []handler
	googleProvider google.ItfGoogle
	textDetector   ocr.TextDetector
	sheetsClient   sheets.ItfSheets
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.textDetector == nil {
		return nil, fmt.Errorf("text detector is required")
	}
	if server.sheetsClient == nil {
		return nil, fmt.Errorf("sheets client is required")
	}

	return server, nil
}

func WithEnv(env Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects the ledger mirror when DB_HOST is set and makes sure
// the receipts table exists.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		if !s.env.DatabaseEnabled() {
			return nil
		}

		db, err := postgres.New(s.env.Postgres)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := receiptRepository.New(db, s.log).Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate receipts table: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

// WithTextDetector picks the OCR backend named by OCR_PROVIDER.
func WithTextDetector(ctx context.Context) ServerOption {
	return func(s *Server) error {
		switch s.env.OCRProvider {
		case ocr.ProviderGemini:
			client, err := gemini.NewGeminiClient(ctx, s.env.GeminiAPIKey, s.env.GeminiModelName)
			if err != nil {
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}
			s.textDetector = ocr.NewModelDetector(ocr.ProviderGemini, client)
		case ocr.ProviderOpenAI:
			client, err := openai.NewChatGPT(s.env.OpenAIAPIKey, s.env.OpenAIModel, s.env.OpenAIBaseURL)
			if err != nil {
				return fmt.Errorf("failed to create OpenAI client: %w", err)
			}
			s.textDetector = ocr.NewModelDetector(ocr.ProviderOpenAI, client)
		default:
			if s.googleProvider == nil {
				return fmt.Errorf("google provider must be initialized before the vision detector")
			}
			detector, err := ocr.NewVisionDetector(ctx, s.googleProvider)
			if err != nil {
				return err
			}
			s.textDetector = detector
		}

		if s.log != nil {
			s.log.Infof("Using %s text detector", s.env.OCRProvider)
		}
		return nil
	}
}

func WithSheets(ctx context.Context) ServerOption {
	return func(s *Server) error {
		if s.googleProvider == nil {
			return fmt.Errorf("google provider must be initialized before sheets")
		}
		client, err := sheets.New(ctx, s.googleProvider, s.env.SheetsID, s.env.SheetsRange)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		s.sheetsClient = client
		return nil
	}
}

func WithRedisServer() ServerOption {
	return func(s *Server) error {
		if !s.env.RedisEnabled() {
			return nil
		}
		s.redisServer = redis.New(s.env.Redis, s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		if !s.env.S3Enabled() {
			return nil
		}
		client, err := s3.New(s.env.S3)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.utils)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New(s.env.MaxUploadSize())
		return nil
	}
}

func WithParser(p *parser.Parser) ServerOption {
	return func(s *Server) error {
		s.parser = p
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	deps := receiptService.Dependencies{
		Parser:   s.parser,
		Detector: s.textDetector,
		Sheets:   s.sheetsClient,
		Utils:    s.utils,
	}
	if s.db != nil {
		deps.Repository = receiptRepository.New(s.db, s.log)
	}
	if s.redisServer != nil {
		deps.Cache = s.redisServer
	}
	if s.s3Client != nil {
		deps.Archive = s.s3Client
	}

	receiptServices := receiptService.NewReceiptService(s.log, deps)
	receiptHandlers := receiptHandler.New(s.log, s.validator, s.middleware, receiptServices, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, receiptHandlers)
}

func (s *Server) Run() error {
	s.mountHandlers()

	port := s.env.AppPort
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) mountHandlers() {
	router := s.engine.Group("/api")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		return err
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
