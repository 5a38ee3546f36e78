package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-task-manager/pkg/telegram"
)

func newTestServer(t *testing.T, seen *[]map[string]any) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		req["_path"] = r.URL.Path
		*seen = append(*seen, req)

		text, _ := req["text"].(string)
		url, _ := req["url"].(string)
		switch {
		case text == "cause_error" || url == "cause_error":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "description": "bad request"}`))
		case text == "cause_500" || url == "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestBot(t *testing.T) {
	var seen []map[string]any
	ts := newTestServer(t, &seen)
	ctx := context.Background()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL + "/bottest-token")

	tests := []struct {
		name     string
		call     func() error
		wantErr  string
		wantPath string
	}{
		{
			name:     "SetWebhook with secret",
			call:     func() error { return bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret") },
			wantPath: "/bottest-token/setWebhook",
		},
		{
			name:    "SetWebhook API failure",
			call:    func() error { return bot.SetWebhook(ctx, "cause_error", "") },
			wantErr: "bad request",
		},
		{
			name:     "SendMessage",
			call:     func() error { return bot.SendMessage(ctx, 12345, "Hello") },
			wantPath: "/bottest-token/sendMessage",
		},
		{
			name:     "SendMessageWithMode",
			call:     func() error { return bot.SendMessageWithMode(ctx, 12345, "*Hello*", telegram.ParseModeMarkdown) },
			wantPath: "/bottest-token/sendMessage",
		},
		{
			name:    "SendMessage API failure",
			call:    func() error { return bot.SendMessage(ctx, 12345, "cause_error") },
			wantErr: "bad request",
		},
		{
			name:    "SendMessage empty body",
			call:    func() error { return bot.SendMessage(ctx, 12345, "cause_500") },
			wantErr: "decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			err := tt.call()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(seen) != 1 || seen[0]["_path"] != tt.wantPath {
				t.Errorf("requests = %v, want one to %s", seen, tt.wantPath)
			}
		})
	}

	seen = nil
	_ = bot.SetWebhook(ctx, "https://example.com/hook", "s3cret")
	if len(seen) != 1 || seen[0]["secret_token"] != "s3cret" {
		t.Errorf("setWebhook payload = %v, want secret_token", seen)
	}

	seen = nil
	_ = bot.SendMessageWithMode(ctx, 42, "hi", telegram.ParseModeMarkdown)
	if len(seen) != 1 || seen[0]["parse_mode"] != "Markdown" || seen[0]["chat_id"] != float64(42) {
		t.Errorf("sendMessage payload = %v", seen)
	}
}

func TestBot_NetworkFailure(t *testing.T) {
	bot := telegram.NewBot("test")
	bot.SetAPIURL("http://127.0.0.1:1")
	if err := bot.SendMessage(context.Background(), 1, "fail"); err == nil {
		t.Errorf("expected network failure")
	}
}
