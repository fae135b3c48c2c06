package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/catalog/careers/controller"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func CareerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCareerController(db)

	g := r.Group("/careers", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

func CareerPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCareerController(db)

	r.Get("/careers", ctrl.List)
}
