package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vitaran/vitaran/internal/vitaran/payment/razorpay"
	"github.com/vitaran/vitaran/internal/vitaran/service"
	"github.com/vitaran/vitaran/pkg/jwtx"
)

// minProdSecretBytes is the shortest JWT_SECRET accepted when ENV=prod.
const minProdSecretBytes = 32

type Config struct {
	DatabaseURL   string // Optional: sqlite path, sqlite://, postgres:// or mongodb:// URL (default: vitaran.db)
	MongoDatabase string // Optional: database name for mongodb:// URLs (default: vitaran)

	JWTSecret            string        // Required in prod: HS256 secret for session tokens
	Issuer               string        // Optional: iss claim (default: vitaran)
	TokenTTL             time.Duration // Optional: session lifetime (default: 7 days)
	ResetRequiresSession bool          // Optional: password reset needs the owner's session (default: true)

	RazorpayKeyID             string        // Optional: payments are disabled without a key pair
	RazorpayKeySecret         string        // Optional
	RazorpayBaseURL           string        // Optional: API base (default: https://api.razorpay.com)
	PaymentCurrency           string        // Optional: order currency (default: INR)
	PaymentTimeout            time.Duration // Optional: gateway request timeout (default: 10s)
	PaymentBreakerMaxFailures int           // Optional: consecutive failures before the breaker opens (default: 5)
	PaymentBreakerTimeout     time.Duration // Optional: how long the breaker stays open (default: 30s)

	StaticDir           string        // Optional: serve pages from disk instead of the embedded bundle
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory if one exists. Variables already set win over the file.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseURL:   getEnvOrDefault("DATABASE_URL", "vitaran.db"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "vitaran"),

		JWTSecret:            os.Getenv("JWT_SECRET"),
		Issuer:               getEnvOrDefault("AUTH_ISSUER", "vitaran"),
		TokenTTL:             getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultSessionTTL),
		ResetRequiresSession: getEnvBoolOrDefault("AUTH_RESET_REQUIRES_SESSION", true),

		RazorpayKeyID:             os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:         os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayBaseURL:           getEnvOrDefault("RAZORPAY_BASE_URL", razorpay.DefaultBaseURL),
		PaymentCurrency:           getEnvOrDefault("PAYMENT_CURRENCY", service.DefaultCurrency),
		PaymentTimeout:            getEnvDurationOrDefault("PAYMENT_TIMEOUT", razorpay.DefaultTimeout),
		PaymentBreakerMaxFailures: getEnvIntOrDefault("PAYMENT_BREAKER_MAX_FAILURES", razorpay.DefaultBreakerMaxFailures),
		PaymentBreakerTimeout:     getEnvDurationOrDefault("PAYMENT_BREAKER_TIMEOUT", razorpay.DefaultBreakerTimeout),

		StaticDir:           os.Getenv("STATIC_DIR"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// IsProd reports whether the service runs in production.
func (c Config) IsProd() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}

// PaymentsEnabled reports whether a Razorpay key pair is configured.
func (c Config) PaymentsEnabled() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.IsProd() {
		switch {
		case c.JWTSecret == "":
			errs = append(errs, errors.New("JWT_SECRET is required in prod"))
		case len(c.JWTSecret) < minProdSecretBytes:
			errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes in prod", minProdSecretBytes))
		}
	}
	if (c.RazorpayKeyID == "") != (c.RazorpayKeySecret == "") {
		errs = append(errs, errors.New("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set together"))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL must not be empty"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("AUTH_TOKEN_TTL must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}
	if c.PaymentBreakerMaxFailures <= 0 {
		errs = append(errs, errors.New("PAYMENT_BREAKER_MAX_FAILURES must be positive"))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
