package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
	userController "coursedesk_backend/internals/features/users/user/controller"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
	"coursedesk_backend/internals/notifications"
)

// UserAdminRoutes mounts /users on an authenticated router.
func UserAdminRoutes(r fiber.Router, db *gorm.DB, mediaSvc *media.Service, mailer notifications.Sender) {
	ctrl := userController.NewUserController(db, mediaSvc, mailer)

	g := r.Group("/users", authMiddleware.RequireSection(constants.SectionUsers))
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/active", ctrl.SetActive)
	g.Delete("/:id", ctrl.Delete)
}
