package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/features/marketing/faqs/controller"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

func FAQAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFAQController(db)

	g := r.Group("/faqs", authMiddleware.RequireSection(constants.SectionFAQs))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

// FAQPublicRoutes serves GET /faqs?service_id=
func FAQPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFAQController(db)

	r.Get("/faqs", ctrl.List)
}
