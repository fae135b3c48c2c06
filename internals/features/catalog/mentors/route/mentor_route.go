package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/catalog/mentors/controller"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func MentorAdminRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewMentorController(db, mediaSvc)

	g := r.Group("/mentors", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

func MentorPublicRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewMentorController(db, mediaSvc)

	r.Get("/mentors", ctrl.List)
}
