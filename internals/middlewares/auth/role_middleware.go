package auth

import (
	"github.com/gofiber/fiber/v2"

	"coursedesk_backend/internals/constants"
	userModel "coursedesk_backend/internals/features/users/user/model"
	helper "coursedesk_backend/internals/helpers"
)

// RequireSection lets admins through and otherwise requires the section
// to be granted in the user's roles. Must run after AuthMiddleware.
func RequireSection(section string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(helper.LocUserID).(string); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if IsAdmin(c) || userModel.RolesAllow(RolesFromLocals(c), section) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.SectionError(section))
	}
}
