package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/marketing/blogs/controller"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func BlogAdminRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewBlogController(db, mediaSvc)

	g := r.Group("/blogs", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

func BlogPublicRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewBlogController(db, mediaSvc)

	g := r.Group("/blogs")
	g.Get("/", ctrl.List)
	g.Get("/slug/:slug", ctrl.GetBySlug)
}
