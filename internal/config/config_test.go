package config

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var configKeys = []string{
	"PORT", "DB_DRIVER", "JWT_SECRET", "JWT_TTL", "CORS_ALLOWED_ORIGINS",
	"LLM_PROVIDER", "LLM_API_KEY", "OPENAI_API_KEY", "LLM_MODEL", "OPENAI_MODEL",
	"GEMINI_API_KEY", "GEMINI_MODEL", "GENERATE_RATE_PER_MINUTE", "GENERATE_BURST",
}

func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "tourwise-dev-secret", cfg.JWTSecret)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 6.0, cfg.GenerateRatePerMinute)
	assert.Equal(t, 3, cfg.GenerateBurst)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.test , ,https://b.test")
	t.Setenv("GENERATE_BURST", "ten")
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 3, cfg.GenerateBurst)
	assert.Equal(t, "sk-openai", cfg.LLMAPIKey)
}

func TestLoad_GeminiKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")

	cfg := Load()

	assert.Equal(t, "g-key", cfg.LLMAPIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLMModel)
}

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	(&Config{LogLevel: "debug", LogFormat: "json"}).ConfigureLogging()
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	(&Config{LogLevel: "loud"}).ConfigureLogging()
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}
