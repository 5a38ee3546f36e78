package llmprovider_test

import (
	"context"
	"testing"

	"smart-task-manager/config"
	"smart-task-manager/pkg/llmprovider"
	"smart-task-manager/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration loading,
// provider initialization, and manager work together correctly
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   "test-gemini-key",
				Model:    "gemini-2.0-flash",
				Timeout:  "30s",
			},
			{
				Name:     "qwen",
				Enabled:  true,
				Priority: 2,
				APIKey:   "test-qwen-key",
				Model:    "qwen-plus",
				Timeout:  "30s",
			},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "60s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	if len(providers) != 2 {
		t.Errorf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Model() != "gemini-2.0-flash" {
		t.Errorf("Expected first provider to use gemini-2.0-flash, got %s", providers[0].Model())
	}
	if providers[1].Name() != "qwen" {
		t.Errorf("Expected second provider to be qwen, got %s", providers[1].Name())
	}

	manager, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("NewManagerFromConfig: %v", err)
	}
	if manager == nil {
		t.Fatal("Manager should not be nil")
	}
}

// TestIntegration_ConfigValidation verifies that invalid configurations
// are caught during initialization
func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "test-key", Model: "gemini-2.0-flash"},
				},
				RetryAttempts: 3,
				RetryDelay:    "1s",
			},
			wantErr: false,
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name: "no providers",
			cfg: &config.LLMConfig{
				Providers:     []config.ProviderConfig{},
				RetryAttempts: 3,
			},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: false, Priority: 1, APIKey: "test-key", Model: "gemini-2.0-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.0-flash"},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "k", Model: "gpt"},
				},
			},
			wantErr: true,
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "m", Timeout: "soon"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIntegration_BadRetryDelay(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
		},
		RetryDelay: "later",
	}
	if _, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop()); err == nil {
		t.Fatal("expected error for invalid retry delay")
	}
}
