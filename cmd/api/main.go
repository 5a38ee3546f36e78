package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-manager/config"
	_ "smart-task-manager/docs" // Swagger docs
	"smart-task-manager/internal/httpserver"
	"smart-task-manager/internal/parser"
	"smart-task-manager/internal/parser/ai"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/internal/task/repository/memory"
	"smart-task-manager/internal/task/repository/memos"
	"smart-task-manager/internal/task/usecase"
	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/gcalendar"
	"smart-task-manager/pkg/llmprovider"
	"smart-task-manager/pkg/log"
	pkgTelegram "smart-task-manager/pkg/telegram"
)

// @title       Smart Task Manager API
// @description Natural-language task intake: parse task descriptions and meeting transcripts into structured tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser engine
	dateParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}
	ruleBackend := parser.NewRuleBackend(parser.New(dateParser))
	backend := ruleBackend

	// 4. LLM (optional): AI parsing with rule fallback, and subtask suggestions
	var suggester usecase.Suggester
	if len(cfg.LLM.Providers) > 0 {
		manager, llmErr := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
		if llmErr != nil {
			logger.Warnf(ctx, "LLM providers not available, using rule parser only: %v", llmErr)
		} else {
			aiBackend := ai.New(manager, dateParser, logger)
			suggester = aiBackend
			if cfg.Parser.Backend == config.ParserBackendAI {
				backend = parser.WithFallback(aiBackend, ruleBackend, logger)
			}
			logger.Info(ctx, "LLM providers initialized")
		}
	}
	logger.Infof(ctx, "Parser backend: %s", backend.Name())

	// 5. Google Calendar (optional)
	var calendar gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task domain
	var taskRepo repository.Repository
	switch cfg.Storage.Backend {
	case config.StorageBackendMemos:
		taskRepo = memos.New(memos.NewClient(cfg.Storage.Memos.BaseURL, cfg.Storage.Memos.AccessToken), logger)
		logger.Infof(ctx, "Task storage: Memos at %s", cfg.Storage.Memos.BaseURL)
	default:
		taskRepo = memory.New(logger)
		logger.Info(ctx, "Task storage: in-memory")
	}
	taskUC := usecase.New(taskRepo, backend, suggester, calendar, cfg.GoogleCalendar.CalendarID, logger)

	// 7. Telegram bot (optional)
	var telegramBot pkgTelegram.IBot
	if cfg.Telegram.BotToken != "" {
		bot := pkgTelegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.WebhookURL != "" {
			if err := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
				logger.Warnf(ctx, "Telegram webhook registration failed: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook set to %s", cfg.Telegram.WebhookURL)
			}
		}
		telegramBot = bot
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RateLimit:      cfg.RateLimit,
		TaskUseCase:    taskUC,
		TelegramBot:    telegramBot,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
