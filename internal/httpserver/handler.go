package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-task-manager/internal/middleware"
	"smart-task-manager/internal/model"
	taskHTTP "smart-task-manager/internal/task/delivery/http"
	taskTelegram "smart-task-manager/internal/task/delivery/telegram"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "HTTP middlewares registered (environment: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.rateLimit)

	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)

	if srv.rateLimit.Enabled {
		srv.l.Infof(ctx, "Task routes registered at /api/v1/tasks (rate limit %d/min per client)", srv.rateLimit.PerMin)
	} else {
		srv.l.Infof(ctx, "Task routes registered at /api/v1/tasks (rate limit disabled)")
	}

	if srv.telegramBot != nil {
		taskTelegram.RegisterRoutes(srv.gin, taskTelegram.New(srv.l, srv.taskUC, srv.telegramBot, srv.telegramSecret))
		srv.l.Infof(ctx, "Telegram webhook registered at /webhook/telegram")
	}
	return nil
}
