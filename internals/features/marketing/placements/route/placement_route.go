package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/marketing/placements/controller"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func PlacementAdminRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewPlacementController(db, mediaSvc)

	g := r.Group("/placements", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

func PlacementPublicRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewPlacementController(db, mediaSvc)

	r.Get("/placements", ctrl.List)
}
