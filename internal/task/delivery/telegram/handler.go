package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	pkgResponse "smart-task-manager/pkg/response"
	pkgTelegram "smart-task-manager/pkg/telegram"
)

const (
	cmdStart   = "/start"
	cmdHelp    = "/help"
	cmdMeeting = "/meeting"
	cmdList    = "/list"
	cmdSuggest = "/suggest"
	cmdDone    = "/done"

	listLimit = 10
)

const helpText = `*Smart Task Manager*

Send a task in plain words and I will store it:
` + "`Call the client tomorrow at 9am, urgent`" + `

Commands:
/meeting <transcript> - extract action items from meeting notes
/list - show open tasks
/suggest <task> - suggest subtasks
/done <id> - toggle a task's completion`

// HandleWebhook acknowledges a Telegram update at once and processes the
// message in the background, since Telegram retries slow webhooks.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "task.delivery.telegram.HandleWebhook: invalid secret token from %s", c.ClientIP())
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "task.delivery.telegram.HandleWebhook: bind update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || strings.TrimSpace(msg.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	h.dispatch(func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "task.delivery.telegram.processMessage: chat=%d: %v", msg.Chat.ID, err)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one command or free-text message and replies to the chat.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	sc := h.scope(msg)
	cmd, arg := splitCommand(msg.Text)

	switch cmd {
	case cmdStart, cmdHelp:
		return h.bot.SendMessageWithMode(ctx, chatID, helpText, pkgTelegram.ParseModeMarkdown)

	case cmdMeeting:
		return h.createFromText(ctx, sc, chatID, arg, true)

	case cmdList:
		out, err := h.uc.List(ctx, sc, task.ListInput{})
		if err != nil {
			return h.replyError(ctx, chatID, err)
		}
		return h.bot.SendMessage(ctx, chatID, formatList(out.Tasks, h.clock()))

	case cmdSuggest:
		out, err := h.uc.Suggest(ctx, sc, task.SuggestInput{Text: arg})
		if err != nil {
			return h.replyError(ctx, chatID, err)
		}
		return h.bot.SendMessage(ctx, chatID, formatSuggestions(out.Suggestions))

	case cmdDone:
		out, err := h.uc.ToggleComplete(ctx, sc, arg)
		if err != nil {
			return h.replyError(ctx, chatID, err)
		}
		return h.bot.SendMessage(ctx, chatID, formatToggle(out.Task))

	case "":
		return h.createFromText(ctx, sc, chatID, msg.Text, false)
	}

	return h.bot.SendMessage(ctx, chatID, fmt.Sprintf("Unknown command %s. Send /help for usage.", cmd))
}

func (h *handler) createFromText(ctx context.Context, sc model.Scope, chatID int64, text string, transcript bool) error {
	out, err := h.uc.CreateFromText(ctx, sc, task.CreateFromTextInput{
		Text:       text,
		Transcript: transcript,
	})
	if err != nil {
		if len(out.Tasks) > 0 {
			if sendErr := h.bot.SendMessage(ctx, chatID, formatCreated(out.Tasks)); sendErr != nil {
				h.l.Warnf(ctx, "task.delivery.telegram.createFromText: SendMessage: %v", sendErr)
			}
		}
		return h.replyError(ctx, chatID, err)
	}
	return h.bot.SendMessage(ctx, chatID, formatCreated(out.Tasks))
}

// replyError sends a user-facing message and returns err only when it is unexpected.
func (h *handler) replyError(ctx context.Context, chatID int64, err error) error {
	if sendErr := h.bot.SendMessage(ctx, chatID, errorMessage(err)); sendErr != nil {
		h.l.Warnf(ctx, "task.delivery.telegram.replyError: SendMessage: %v", sendErr)
	}
	if isUserError(err) {
		return nil
	}
	return err
}

func (h *handler) scope(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	}
	return model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.From.ID)}
}

// splitCommand separates a leading bot command from its argument at the first
// whitespace, so a transcript may start on the line after the command.
// "/meeting@my_bot notes" yields ("/meeting", "notes"); plain text yields ("", text).
func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd, arg := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		cmd, arg = text[:i], text[i:]
	}
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}
