package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const requestTimeout = 15 * time.Second

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// SetAPIURL overrides the bot API URL, including the token path segment.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	if err := b.call(ctx, "setWebhook", setWebhookRequest{URL: webhookURL, SecretToken: secretToken}); err != nil {
		return fmt.Errorf("telegram setWebhook: %w", err)
	}
	return nil
}

func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error {
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}
	if err := b.call(ctx, "sendMessage", payload); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}

// call posts payload to a Bot API method and checks the ok flag of the reply.
func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("api error %d: %s", resp.StatusCode, apiResp.Description)
	}
	return nil
}

var _ IBot = (*Bot)(nil)
