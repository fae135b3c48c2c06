package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"coursedesk_backend/internals/configs"
	database "coursedesk_backend/internals/databases"
	scheduler "coursedesk_backend/internals/features/users/auth/scheduler"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
	middlewares "coursedesk_backend/internals/middlewares"
	"coursedesk_backend/internals/notifications"
	routes "coursedesk_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Current

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		BodyLimit:               12 * 1024 * 1024, // base64 images travel inside JSON
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, cfg)

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// scheduler after the DB is ready
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	scheduler.StartBlacklistCleanupScheduler(ctx, database.DB, cfg.Auth.CleanupInterval)

	routes.SetupRoutes(app, database.DB, media.NewServiceFromEnv(), notifications.NewFromConfig(cfg.Mail))

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	go func() {
		log.Infof("✅ Listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close the DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
	database.Close()
}
