package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	LLM    LLMConfig
	Render RenderConfig
}

// LLMConfig holds vision-model related configuration
type LLMConfig struct {
	APIKey           string
	BaseURL          string
	Model            string
	MaxTokens        int
	SummaryMaxTokens int
	Timeout          time.Duration
}

// RenderConfig holds page rendering configuration
type RenderConfig struct {
	DPI float64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey:           getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL:          getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Model:            getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens:        getEnvAsInt("LLM_MAX_TOKENS", 8000),
			SummaryMaxTokens: getEnvAsInt("LLM_SUMMARY_MAX_TOKENS", 1000),
			Timeout:          getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
		Render: RenderConfig{
			// 3x zoom over the PDF's 72dpi baseline, matching the capture
			// resolution the vision prompts were tuned against.
			DPI: getEnvAsFloat64("RENDER_DPI", 216),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "ANTHROPIC_API_KEY is required", ErrInvalidInput)
	}
	if c.LLM.Model == "" {
		return NewAppError("CONFIG_ERROR", "ANTHROPIC_MODEL is required", ErrInvalidInput)
	}
	if c.Render.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "RENDER_DPI must be positive", ErrInvalidInput)
	}
	return nil
}
