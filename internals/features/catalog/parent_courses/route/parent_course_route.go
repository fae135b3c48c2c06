package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/catalog/parent_courses/controller"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func ParentCourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewParentCourseController(db)

	g := r.Group("/parent-courses", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

func ParentCoursePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewParentCourseController(db)

	r.Get("/parent-courses", ctrl.List)
}
