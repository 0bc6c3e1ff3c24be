package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestEnvFromLookup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		env, err := EnvFromLookup(lookupFrom(map[string]string{
			"GOOGLE_SERVICE_ACCOUNT": `{"type":"service_account"}`,
			"GOOGLE_SHEETS_ID":       "sheet-1",
		}), NewValidator())
		require.NoError(t, err)

		assert.Equal(t, "3000", env.AppPort)
		assert.Equal(t, "A:E", env.SheetsRange)
		assert.Equal(t, "vision", env.OCRProvider)
		assert.Equal(t, "gemini-1.5-flash", env.GeminiModelName)
		assert.Equal(t, int64(10*1024*1024), env.MaxUploadSize())
		assert.False(t, env.RedisEnabled())
		assert.False(t, env.DatabaseEnabled())
		assert.False(t, env.S3Enabled())
	})

	t.Run("optional collaborators", func(t *testing.T) {
		env, err := EnvFromLookup(lookupFrom(map[string]string{
			"GOOGLE_SERVICE_ACCOUNT": `{"type":"service_account"}`,
			"GOOGLE_SHEETS_ID":       "sheet-1",
			"REDIS_ADDRESS":          "localhost:6379",
			"REDIS_DB":               "2",
			"DB_HOST":                "localhost",
			"DB_NAME":                "receipts",
			"AWS_BUCKET_NAME":        "transcripts",
		}), NewValidator())
		require.NoError(t, err)

		assert.True(t, env.RedisEnabled())
		assert.Equal(t, 2, env.Redis.DB)
		assert.True(t, env.DatabaseEnabled())
		assert.True(t, env.S3Enabled())
	})

	tests := []struct {
		name   string
		values map[string]string
	}{
		{"missing service account", map[string]string{"GOOGLE_SHEETS_ID": "sheet-1"}},
		{"service account not json", map[string]string{"GOOGLE_SERVICE_ACCOUNT": "nope", "GOOGLE_SHEETS_ID": "sheet-1"}},
		{"missing sheet id", map[string]string{"GOOGLE_SERVICE_ACCOUNT": `{}`}},
		{"unknown provider", map[string]string{"GOOGLE_SERVICE_ACCOUNT": `{}`, "GOOGLE_SHEETS_ID": "s", "OCR_PROVIDER": "tesseract"}},
		{"gemini without key", map[string]string{"GOOGLE_SERVICE_ACCOUNT": `{}`, "GOOGLE_SHEETS_ID": "s", "OCR_PROVIDER": "gemini"}},
		{"openai without key", map[string]string{"GOOGLE_SERVICE_ACCOUNT": `{}`, "GOOGLE_SHEETS_ID": "s", "OCR_PROVIDER": "openai"}},
		{"bad redis db", map[string]string{"GOOGLE_SERVICE_ACCOUNT": `{}`, "GOOGLE_SHEETS_ID": "s", "REDIS_DB": "x"}},
		{"upload too large", map[string]string{"GOOGLE_SERVICE_ACCOUNT": `{}`, "GOOGLE_SHEETS_ID": "s", "MAX_UPLOAD_SIZE_MB": "500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EnvFromLookup(lookupFrom(tt.values), NewValidator())
			assert.Error(t, err)
		})
	}
}
