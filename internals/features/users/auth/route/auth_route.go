package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coursedesk_backend/internals/features/users/auth/controller"
	rateLimiter "coursedesk_backend/internals/middlewares"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
	baseAuth.Post("/logout", authController.Logout)

	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", authController.Me)
	protected.Get("/me/menu", authController.MeMenu)
	protected.Post("/change-password", authController.ChangePassword)
}
