package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/contacts/contacts/controller"
	"coursedesk_backend/internals/middlewares"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
	"coursedesk_backend/internals/notifications"
)

func ContactAdminRoutes(r fiber.Router, db *gorm.DB, mailer notifications.Sender) {
	ctrl := controller.NewContactController(db, mailer)

	g := r.Group("/contacts", authMiddleware.RequireSection(constants.SectionContact))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Patch("/:id/close", ctrl.SetClosed)
	g.Delete("/:id", ctrl.Delete)
}

// ContactPublicRoutes accepts enquiries from the public site.
func ContactPublicRoutes(r fiber.Router, db *gorm.DB, mailer notifications.Sender) {
	ctrl := controller.NewContactController(db, mailer)

	r.Post("/contacts", middlewares.ContactRateLimiter(), ctrl.Create)
}
