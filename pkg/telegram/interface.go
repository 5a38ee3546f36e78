package telegram

import "context"

// IBot is the subset of the Telegram Bot API used by the service.
// Implementations are safe for concurrent use.
type IBot interface {
	// SetWebhook registers webhookURL with Telegram. A non-empty secretToken is
	// echoed back by Telegram in the X-Telegram-Bot-Api-Secret-Token header.
	SetWebhook(ctx context.Context, webhookURL, secretToken string) error
	SendMessage(ctx context.Context, chatID int64, text string) error
	// SendMessageWithMode sends text with a parse mode such as ParseModeMarkdown.
	SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error
}
