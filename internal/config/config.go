package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Port           string
	DBDriver       string
	MongoURI       string
	MongoDB        string
	PostgresURL    string
	JWTSecret      string
	JWTTTL         time.Duration
	AllowedOrigins []string
	PublicBaseURL  string

	LLMProvider string
	LLMAPIKey   string
	LLMBaseURL  string
	LLMModel    string
	LLMTimeout  time.Duration

	GoogleMapsAPIKey string
	PlacesBaseURL    string
	PlacesTimeout    time.Duration

	GenerateRatePerMinute float64
	GenerateBurst         int

	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverMongo)),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "tourwise"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         getDuration("JWT_TTL", 24*time.Hour),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),

		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		LLMAPIKey:   firstNonEmpty(os.Getenv("LLM_API_KEY"), os.Getenv("OPENAI_API_KEY")),
		LLMBaseURL:  firstNonEmpty(os.Getenv("LLM_BASE_URL"), os.Getenv("OPENAI_BASE_URL")),
		LLMModel:    firstNonEmpty(os.Getenv("LLM_MODEL"), os.Getenv("OPENAI_MODEL")),
		LLMTimeout:  getDuration("LLM_TIMEOUT", 45*time.Second),

		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		PlacesBaseURL:    os.Getenv("PLACES_BASE_URL"),
		PlacesTimeout:    getDuration("PLACES_TIMEOUT", 8*time.Second),

		GenerateRatePerMinute: getFloat("GENERATE_RATE_PER_MINUTE", 6),
		GenerateBurst:         getInt("GENERATE_BURST", 3),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if cfg.LLMProvider == "gemini" {
		cfg.LLMAPIKey = firstNonEmpty(os.Getenv("GEMINI_API_KEY"), cfg.LLMAPIKey)
		cfg.LLMModel = firstNonEmpty(os.Getenv("GEMINI_MODEL"), cfg.LLMModel)
	}
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, using an insecure development secret")
		cfg.JWTSecret = "tourwise-dev-secret"
	}
	return cfg
}

// ConfigureLogging applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c *Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.WithField("key", key).Warnf("invalid duration %q, using %s", v, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.WithField("key", key).Warnf("invalid integer %q, using %d", v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.WithField("key", key).Warnf("invalid number %q, using %v", v, fallback)
		return fallback
	}
	return f
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
