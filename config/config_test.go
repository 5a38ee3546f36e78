package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	gemini := ProviderConfig{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.0-flash"}

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "rule backend needs no providers",
			cfg:  Config{Parser: ParserConfig{Backend: ParserBackendRule}},
		},
		{
			name: "ai backend with a provider",
			cfg: Config{
				Parser: ParserConfig{Backend: ParserBackendAI},
				LLM:    LLMConfig{Providers: []ProviderConfig{gemini}},
			},
		},
		{
			name:    "ai backend without providers",
			cfg:     Config{Parser: ParserConfig{Backend: ParserBackendAI}},
			wantErr: "no LLM providers configured",
		},
		{
			name: "ai backend with duplicate priorities",
			cfg: Config{
				Parser: ParserConfig{Backend: ParserBackendAI},
				LLM:    LLMConfig{Providers: []ProviderConfig{gemini, gemini}},
			},
			wantErr: "duplicate priority",
		},
		{
			name: "ai backend with a keyless provider",
			cfg: Config{
				Parser: ParserConfig{Backend: ParserBackendAI},
				LLM: LLMConfig{Providers: []ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
				}},
			},
			wantErr: "API key is required",
		},
		{
			name:    "unknown backend",
			cfg:     Config{Parser: ParserConfig{Backend: "regex"}},
			wantErr: "unknown parser.backend",
		},
		{
			name: "rate limit without a rate",
			cfg: Config{
				Parser:    ParserConfig{Backend: ParserBackendRule},
				RateLimit: RateLimitConfig{Enabled: true},
			},
			wantErr: "rate_limit.per_min",
		},
		{
			name: "memos storage without credentials",
			cfg: Config{
				Parser:  ParserConfig{Backend: ParserBackendRule},
				Storage: StorageConfig{Backend: StorageBackendMemos, Memos: MemosConfig{BaseURL: "http://localhost:5230"}},
			},
			wantErr: "storage.memos.access_token",
		},
		{
			name: "memos storage",
			cfg: Config{
				Parser:  ParserConfig{Backend: ParserBackendRule},
				Storage: StorageConfig{Backend: StorageBackendMemos, Memos: MemosConfig{BaseURL: "http://localhost:5230", AccessToken: "t"}},
			},
		},
		{
			name: "unknown storage",
			cfg: Config{
				Parser:  ParserConfig{Backend: ParserBackendRule},
				Storage: StorageConfig{Backend: "postgres"},
			},
			wantErr: "unknown storage.backend",
		},
		{
			name: "telegram webhook without token",
			cfg: Config{
				Parser:   ParserConfig{Backend: ParserBackendRule},
				Telegram: TelegramConfig{WebhookURL: "https://example.com/webhook/telegram"},
			},
			wantErr: "telegram.bot_token",
		},
		{
			name: "telegram bot without webhook url",
			cfg: Config{
				Parser:   ParserConfig{Backend: ParserBackendRule},
				Telegram: TelegramConfig{BotToken: "123:abc"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 3, "b": float64(4), "c": "5"}
	if got := getIntFromMap(m, "a"); got != 3 {
		t.Errorf("int value = %d", got)
	}
	if got := getIntFromMap(m, "b"); got != 4 {
		t.Errorf("float value = %d", got)
	}
	if got := getIntFromMap(m, "c"); got != 0 {
		t.Errorf("string value = %d, want 0", got)
	}
}
