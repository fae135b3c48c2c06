package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/catalog/courses/controller"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewCourseController(db, mediaSvc)

	g := r.Group("/courses", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Patch("/:id/enabled", ctrl.SetEnabled)
	g.Post("/:id/sections/reorder", ctrl.ReorderSections)
	g.Delete("/:id", ctrl.Delete)
}

func CoursePublicRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service) {
	ctrl := controller.NewCourseController(db, mediaSvc)

	g := r.Group("/courses")
	g.Get("/", ctrl.ListPublic)
	g.Get("/slug/:slug", ctrl.GetBySlug)
}
