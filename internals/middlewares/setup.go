package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"coursedesk_backend/internals/configs"
	"coursedesk_backend/internals/middlewares/logger"
)

// RequestTimeout bounds the user context of every request. Keep it in line
// with the statement_timeout of the database DSN.
const RequestTimeout = 5 * time.Second

// SetupMiddlewares installs the global chain. Order matters: the request id
// must exist before the recovery and access log read it.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(logger.RequestID())
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
	app.Use(Timeout(RequestTimeout))
}

// Timeout sets a deadline on c.UserContext(), which every query runs under.
func Timeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
