package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "coursedesk_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every endpoint
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(300, 1*time.Minute, "Too many requests, please try again later.")
}

func LoginRateLimiter() fiber.Handler {
	return newLimiter(10, 1*time.Minute, "Too many login attempts, please wait a moment.")
}

// ContactRateLimiter guards the public enquiry form.
func ContactRateLimiter() fiber.Handler {
	return newLimiter(5, 10*time.Minute, "Too many enquiries from this address, please try again later.")
}
