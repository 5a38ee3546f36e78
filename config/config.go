package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Parser backends.
const (
	ParserBackendRule = "rule"
	ParserBackendAI   = "ai"
)

// Storage backends.
const (
	StorageBackendMemory = "memory"
	StorageBackendMemos  = "memos"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task storage
	Storage StorageConfig

	// Task parsing
	Parser         ParserConfig
	GoogleCalendar GoogleCalendarConfig

	// Chat delivery
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig selects how free text is turned into tasks.
type ParserConfig struct {
	Timezone string // IANA zone used to resolve relative dates
	Backend  string // "rule" or "ai"; "ai" falls back to "rule" on failure
}

// StorageConfig selects where tasks are kept.
type StorageConfig struct {
	Backend string // "memory" or "memos"
	Memos   MemosConfig
}

type MemosConfig struct {
	BaseURL     string
	AccessToken string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string // OAuth token from calendar-auth, unused for Service Accounts
	CalendarID      string
}

// TelegramConfig enables the Telegram bot webhook when BotToken is set.
type TelegramConfig struct {
	BotToken      string
	WebhookURL    string // public URL registered with Telegram at startup, optional
	WebhookSecret string // compared against X-Telegram-Bot-Api-Secret-Token
}

// RateLimitConfig limits parse requests per client IP.
type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Task storage
	cfg.Storage.Backend = strings.ToLower(viper.GetString("storage.backend"))
	cfg.Storage.Memos.BaseURL = viper.GetString("storage.memos.base_url")
	cfg.Storage.Memos.AccessToken = expandEnvVar(viper.GetString("storage.memos.access_token"))

	// Task parsing
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.Backend = strings.ToLower(viper.GetString("parser.backend"))

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints. LLM providers are only required
// when the AI parser backend is selected.
func (c *Config) Validate() error {
	switch c.Parser.Backend {
	case ParserBackendRule:
	case ParserBackendAI:
		if err := validateLLMConfig(&c.LLM); err != nil {
			return fmt.Errorf("parser.backend is %q: %w", ParserBackendAI, err)
		}
	default:
		return fmt.Errorf("unknown parser.backend %q", c.Parser.Backend)
	}

	switch c.Storage.Backend {
	case "", StorageBackendMemory:
	case StorageBackendMemos:
		if c.Storage.Memos.BaseURL == "" || c.Storage.Memos.AccessToken == "" {
			return fmt.Errorf("storage.backend is %q: storage.memos.base_url and storage.memos.access_token are required", StorageBackendMemos)
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}

	if c.Telegram.WebhookURL != "" && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.webhook_url requires telegram.bot_token")
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	viper.SetDefault("storage.backend", StorageBackendMemory)
	viper.SetDefault("google_calendar.token_path", "token.json")

	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.backend", ParserBackendRule)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.APIKey == "" {
				return fmt.Errorf("provider %s: API key is required", provider.Name)
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
