package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/task"
	pkgLog "smart-task-manager/pkg/log"
	pkgTelegram "smart-task-manager/pkg/telegram"
)

// processTimeout bounds the background work for one message.
const processTimeout = 60 * time.Second

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	uc          task.UseCase
	bot         pkgTelegram.IBot
	secretToken string
	clock       func() time.Time
	// dispatch runs message processing; tests replace it to run inline.
	dispatch func(fn func())
}

// New creates a new Telegram delivery handler. An empty secretToken disables
// the webhook secret check.
func New(l pkgLog.Logger, uc task.UseCase, bot pkgTelegram.IBot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
		clock:       time.Now,
		dispatch:    func(fn func()) { go fn() },
	}
}

// RegisterRoutes mounts the webhook endpoint.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
