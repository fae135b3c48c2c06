package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "coursedesk_backend/internals/features/users/user/model"
	helper "coursedesk_backend/internals/helpers"
)

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"id", "sub"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return uuid.Parse(strings.TrimSpace(v))
		}
	}
	return uuid.Nil, fmt.Errorf("no user id")
}

func loadUser(c *fiber.Ctx, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(c.UserContext()).
		Select("id", "user_name", "is_admin", "is_active", "roles").
		Where("id = ?", userID).
		Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsAdmin reads the flag stored by AuthMiddleware.
func IsAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(helper.LocIsAdmin).(bool)
	return v
}

// RolesFromLocals reads the roles stored by AuthMiddleware.
func RolesFromLocals(c *fiber.Ctx) []userModel.UserRole {
	roles, _ := c.Locals(helper.LocRoles).([]userModel.UserRole)
	return roles
}
