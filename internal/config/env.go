package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"ReceiptLedger/database/postgres"
	"ReceiptLedger/pkg/ocr"
	"ReceiptLedger/pkg/redis"
	"ReceiptLedger/pkg/s3"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Env is the whole process configuration. Nothing outside LoadEnv reads the
// environment.
type Env struct {
	AppPort string `validate:"required,number"`
	AppEnv  string `validate:"required"`

	GoogleServiceAccount string `validate:"required,json"`
	SheetsID             string `validate:"required"`
	SheetsRange          string `validate:"required"`

	OCRProvider     string `validate:"oneof=vision gemini openai"`
	GeminiAPIKey    string `validate:"required_if=OCRProvider gemini"`
	GeminiModelName string
	OpenAIAPIKey    string `validate:"required_if=OCRProvider openai"`
	OpenAIModel     string
	OpenAIBaseURL   string `validate:"omitempty,url"`

	Redis    redis.Config
	Postgres postgres.Config
	S3       s3.Config

	MaxUploadSizeMB int64 `validate:"gt=0,lte=50"`
}

func (e Env) RedisEnabled() bool {
	return e.Redis.Address != ""
}

func (e Env) DatabaseEnabled() bool {
	return e.Postgres.Host != ""
}

func (e Env) S3Enabled() bool {
	return e.S3.BucketName != ""
}

func (e Env) MaxUploadSize() int64 {
	return e.MaxUploadSizeMB * 1024 * 1024
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv(validate *validator.Validate) (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	return EnvFromLookup(os.LookupEnv, validate)
}

func EnvFromLookup(lookup func(string) (string, bool), validate *validator.Validate) (Env, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	redisDB, err := strconv.Atoi(get("REDIS_DB", "0"))
	if err != nil {
		return Env{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxUpload, err := strconv.ParseInt(get("MAX_UPLOAD_SIZE_MB", "10"), 10, 64)
	if err != nil {
		return Env{}, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	env := Env{
		AppPort: get("APP_PORT", "3000"),
		AppEnv:  get("APP_ENV", "development"),

		GoogleServiceAccount: get("GOOGLE_SERVICE_ACCOUNT", ""),
		SheetsID:             get("GOOGLE_SHEETS_ID", ""),
		SheetsRange:          get("GOOGLE_SHEETS_RANGE", "A:E"),

		OCRProvider:     get("OCR_PROVIDER", ocr.ProviderVision),
		GeminiAPIKey:    get("GEMINI_API_KEY", ""),
		GeminiModelName: get("GEMINI_MODEL_NAME", "gemini-1.5-flash"),
		OpenAIAPIKey:    get("OPENAI_API_KEY", ""),
		OpenAIModel:     get("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   get("OPENAI_BASE_URL", ""),

		Redis: redis.Config{
			Address:  get("REDIS_ADDRESS", ""),
			Password: get("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Postgres: postgres.Config{
			Host:     get("DB_HOST", ""),
			Port:     get("DB_PORT", "5432"),
			User:     get("DB_USER", ""),
			Password: get("DB_PASSWORD", ""),
			Name:     get("DB_NAME", ""),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		S3: s3.Config{
			Region:          get("AWS_REGION", ""),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      get("AWS_BUCKET_NAME", ""),
			Endpoint:        get("AWS_ENDPOINT", ""),
		},

		MaxUploadSizeMB: maxUpload,
	}

	if validate != nil {
		if err := validate.Struct(env); err != nil {
			return Env{}, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	return env, nil
}
