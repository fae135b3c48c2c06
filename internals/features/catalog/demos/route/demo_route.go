package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/catalog/demos/controller"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func DemoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDemoController(db)

	g := r.Group("/demos", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

func DemoPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDemoController(db)

	r.Get("/demos", ctrl.List)
}
