package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/contacts/statuses/controller"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func StatusAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatusController(db)

	g := r.Group("/statuses", authMiddleware.RequireSection(constants.SectionContact))
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
