package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-manager/config"
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/log"
	pkgTelegram "smart-task-manager/pkg/telegram"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Task domain
	taskUC task.UseCase

	// Telegram delivery, nil when disabled
	telegramBot    pkgTelegram.IBot
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	TaskUseCase task.UseCase

	TelegramBot    pkgTelegram.IBot
	TelegramSecret string
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		taskUC:      cfg.TaskUseCase,

		telegramBot:    cfg.TelegramBot,
		telegramSecret: cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
