// Package config loads service settings from the environment and the
// generator settings from YAML.
package config

import (
	"os"
	"strconv"
	"time"
)

// Supported LLM providers.
const (
	ProviderGemini  = "gemini"
	ProviderBedrock = "bedrock"
)

// Config holds the environment-driven service settings.
type Config struct {
	Provider string

	GeminiAPIKey  string
	GeminiModelID string
	GeminiBaseURL string
	GeminiTimeout time.Duration

	AWSRegion      string
	BedrockModelID string

	Port      string
	StaticDir string

	RateLimit      float64
	RateLimitBurst int
}

// Load reads the environment, falling back to defaults for everything but
// credentials.
func Load() *Config {
	return &Config{
		Provider:       getEnv("LLM_PROVIDER", ProviderGemini),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:  getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash-preview-09-2025"),
		GeminiBaseURL:  getEnv("GEMINI_BASE_URL", ""),
		GeminiTimeout:  getEnvDuration("GEMINI_TIMEOUT", 30*time.Second),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		BedrockModelID: getEnv("BEDROCK_MODEL_ID", ""),
		Port:           getEnv("CHEM_STATS_PORT", "8080"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		RateLimit:      getEnvFloat("RATE_LIMIT", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
