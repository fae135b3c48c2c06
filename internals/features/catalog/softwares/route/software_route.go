package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/catalog/softwares/controller"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func SoftwareAdminRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewSoftwareController(db, mediaSvc)

	g := r.Group("/softwares", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

func SoftwarePublicRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewSoftwareController(db, mediaSvc)

	r.Get("/softwares", ctrl.List)
}
