package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/marketing/seos/controller"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func SeoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSeoController(db)

	g := r.Group("/seos", authMiddleware.RequireSection(constants.SectionSeo))
	g.Get("/", ctrl.List)
	g.Get("/page/:page_name", ctrl.GetByPage)
	g.Put("/", ctrl.Upsert)
	g.Delete("/:id", ctrl.Delete)
}

func SeoPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSeoController(db)

	r.Get("/seos/:page_name", ctrl.GetByPage)
}
