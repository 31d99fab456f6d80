package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Status-code policies understood by helper.StatusPolicy.
const (
	StatusModeLegacy = "legacy"
	StatusModeREST   = "rest"
)

type Config struct {
	Port             string
	CORSAllowOrigins string
	RateLimitMax     int
	StatusMode       string
	SeedData         bool
	LogTimeZone      string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// RequestTimeout bounds each handler's UserContext; 0 disables it.
	RequestTimeout time.Duration
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load reads the process environment into a Config. Call LoadEnv first when a
// .env file should be honoured.
func Load() Config {
	cfg := Config{
		Port:             getString("PORT", "5000"),
		CORSAllowOrigins: getString("CORS_ALLOW_ORIGINS", "*"),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 100),
		StatusMode:       strings.ToLower(getString("HTTP_STATUS_MODE", StatusModeLegacy)),
		SeedData:         getBool("SEED_DATA", true),
		LogTimeZone:      getString("LOG_TIMEZONE", "Local"),
		ReadTimeout:      getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:     getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:      getDuration("HTTP_IDLE_TIMEOUT", 90*time.Second),
		RequestTimeout:   getDuration("HTTP_REQUEST_TIMEOUT", 5*time.Second),
	}

	if cfg.StatusMode != StatusModeLegacy && cfg.StatusMode != StatusModeREST {
		log.Printf("❌ HTTP_STATUS_MODE=%q unknown, falling back to %q", cfg.StatusMode, StatusModeLegacy)
		cfg.StatusMode = StatusModeLegacy
	}
	return cfg
}

// empty values count as unset
func getString(key, def string) string {
	if v := strings.TrimSpace(GetEnv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("❌ %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("❌ %s=%q is not a boolean, using %t", key, v, def)
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("❌ %s=%q is not a valid duration, using %s", key, v, def)
		return def
	}
	return d
}
