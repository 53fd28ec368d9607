package anthropic

import (
	"log/slog"
	"net/http"
	"time"
)

const apiVersion = "2023-06-01"

// Config for the Anthropic messages client. The caller owns credential
// acquisition; the client never reads the environment.
type Config struct {
	APIKey           string
	BaseURL          string        // default https://api.anthropic.com
	Model            string        // e.g., "claude-sonnet-4-20250514"
	MaxTokens        int           // page analysis budget
	SummaryMaxTokens int           // summary budget
	Timeout          time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 8000
	}
	if cfg.SummaryMaxTokens <= 0 {
		cfg.SummaryMaxTokens = 1000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
