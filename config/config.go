package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// App is the configuration loaded once at startup. Pure helpers receive
// it as a parameter instead of reading the environment themselves.
var App *Config

// Config holds all configuration for the gateway
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	Env        string

	// Test-mode overrides. When TestMode is set, every payment resolves
	// to TestPaymentSuccess after a fixed TestProcessingDelay.
	TestMode            bool
	TestPaymentSuccess  bool
	TestProcessingDelay int

	// Delay bounds (milliseconds) and card success probability used
	// outside test mode.
	ProcessingDelayMin int
	ProcessingDelayMax int
	CardSuccessRate    float64

	// Sentinel test instruments. Defaults match the conventional demo
	// values so existing integrations keep working.
	UPISuccessVPA     string
	CardDeclineNumber string

	// Seeded demo merchant credentials.
	TestMerchantEmail string
	TestAPIKey        string
	TestAPISecret     string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; containers supply the environment
	// directly.
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "payorbit"),
		Port:       getEnv("PORT", "8000"),
		Env:        getEnv("ENV", "development"),

		TestMode:            getEnvBool("TEST_MODE", false),
		TestPaymentSuccess:  getEnvBool("TEST_PAYMENT_SUCCESS", false),
		TestProcessingDelay: getEnvInt("TEST_PROCESSING_DELAY", 1000),

		ProcessingDelayMin: getEnvInt("PROCESSING_DELAY_MIN", 5000),
		ProcessingDelayMax: getEnvInt("PROCESSING_DELAY_MAX", 10000),
		CardSuccessRate:    getEnvFloat("CARD_SUCCESS_RATE", 0.95),

		UPISuccessVPA:     getEnv("UPI_SUCCESS_VPA", "username@bank"),
		CardDeclineNumber: getEnv("CARD_DECLINE_NUMBER", "4000000000000002"),

		TestMerchantEmail: getEnv("TEST_MERCHANT_EMAIL", "test@example.com"),
		TestAPIKey:        getEnv("TEST_API_KEY", "key_test_abc123"),
		TestAPISecret:     getEnv("TEST_API_SECRET", "secret_test_xyz789"),
	}

	// Delay bounds come from the environment unchecked; an inverted or
	// negative pair must not crash the delay draw later.
	if config.ProcessingDelayMin < 0 {
		config.ProcessingDelayMin = 0
	}
	if config.ProcessingDelayMax < config.ProcessingDelayMin {
		config.ProcessingDelayMax = config.ProcessingDelayMin
	}

	App = config
	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value == "true"
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
