package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/contacts/followups/controller"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func FollowupAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFollowupController(db)
	gate := authMiddleware.RequireSection(constants.SectionContact)

	g := r.Group("/followups", gate)
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Delete("/:id", ctrl.Delete)

	r.Get("/contacts/:id/followups", gate, ctrl.ListByContact)
}
