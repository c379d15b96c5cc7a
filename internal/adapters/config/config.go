package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	HTTP      HTTPConfig      `envconfig:"HTTP"`
	Sources   SourcesConfig   `envconfig:"SOURCES"`
	Enrich    EnrichConfig    `envconfig:"ENRICH"`
	Sentiment SentimentConfig `envconfig:"SENTIMENT"`
	Pipeline  PipelineConfig  `envconfig:"PIPELINE"`
	Telegram  TelegramConfig  `envconfig:"TELEGRAM"`
	Logging   LoggingConfig   `envconfig:"LOGGING"`
}

// HTTPConfig represents resilient fetch client parameters
type HTTPConfig struct {
	MaxAttempts    int           `envconfig:"HTTP_MAX_ATTEMPTS" default:"3"`
	BaseBackoff    time.Duration `envconfig:"HTTP_BASE_BACKOFF" default:"500ms"`
	MaxBackoff     time.Duration `envconfig:"HTTP_MAX_BACKOFF" default:"8s"`
	AttemptTimeout time.Duration `envconfig:"HTTP_ATTEMPT_TIMEOUT" default:"10s"`
	RateLimitRPS   float64       `envconfig:"HTTP_RATE_LIMIT_RPS" default:"2.0"`
}

// SourcesConfig represents source adapter and fallback parameters
type SourcesConfig struct {
	Strategy            string        `envconfig:"SOURCES_STRATEGY" default:"first-success"` // first-success or aggregate-all
	GoogleEnabled       bool          `envconfig:"SOURCES_GOOGLE_ENABLED" default:"true"`
	YahooEnabled        bool          `envconfig:"SOURCES_YAHOO_ENABLED" default:"true"`
	MoneycontrolEnabled bool          `envconfig:"SOURCES_MONEYCONTROL_ENABLED" default:"true"`
	MaxArticles         int           `envconfig:"SOURCES_MAX_ARTICLES" default:"5"`
	AttemptPause        time.Duration `envconfig:"SOURCES_ATTEMPT_PAUSE" default:"500ms"`
	AdapterTimeout      time.Duration `envconfig:"SOURCES_ADAPTER_TIMEOUT" default:"20s"`
}

// EnrichConfig represents summary enrichment parameters
type EnrichConfig struct {
	Enabled      bool `envconfig:"ENRICH_ENABLED" default:"true"`
	MinBodyChars int  `envconfig:"ENRICH_MIN_BODY_CHARS" default:"100"`
	MinWords     int  `envconfig:"ENRICH_MIN_WORDS" default:"30"`
	MaxWords     int  `envconfig:"ENRICH_MAX_WORDS" default:"100"`
}

// SentimentConfig represents classification parameters
type SentimentConfig struct {
	Method       string `envconfig:"SENTIMENT_METHOD" default:"lexicon"` // lexicon or model
	MaxWords     int    `envconfig:"SENTIMENT_MAX_WORDS" default:"512"`
	OpenAIAPIKey string `envconfig:"SENTIMENT_OPENAI_API_KEY" required:"false"`
	OpenAIModel  string `envconfig:"SENTIMENT_OPENAI_MODEL" default:"gpt-4o-mini"`
}

// PipelineConfig represents batch orchestration parameters
type PipelineConfig struct {
	CompanyDelayMin time.Duration `envconfig:"PIPELINE_COMPANY_DELAY_MIN" default:"3s"`
	CompanyDelayMax time.Duration `envconfig:"PIPELINE_COMPANY_DELAY_MAX" default:"6s"`
	CompanyTimeout  time.Duration `envconfig:"PIPELINE_COMPANY_TIMEOUT" default:"2m"`
}

// TelegramConfig represents the optional digest notifier
type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"false"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" required:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints envconfig tags cannot express
func (c *Config) Validate() error {
	switch c.Sources.Strategy {
	case "first-success", "aggregate-all":
	default:
		return fmt.Errorf("invalid SOURCES_STRATEGY %q", c.Sources.Strategy)
	}

	switch c.Sentiment.Method {
	case "lexicon", "model":
	default:
		return fmt.Errorf("invalid SENTIMENT_METHOD %q", c.Sentiment.Method)
	}

	if c.Sentiment.Method == "model" && c.Sentiment.OpenAIAPIKey == "" {
		return fmt.Errorf("SENTIMENT_OPENAI_API_KEY is required for model method")
	}

	if c.Pipeline.CompanyDelayMax < c.Pipeline.CompanyDelayMin {
		return fmt.Errorf("PIPELINE_COMPANY_DELAY_MAX must be >= PIPELINE_COMPANY_DELAY_MIN")
	}

	if c.Enrich.MaxWords < c.Enrich.MinWords {
		return fmt.Errorf("ENRICH_MAX_WORDS must be >= ENRICH_MIN_WORDS")
	}

	return nil
}
