package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/configs"
	userModel "coursedesk_backend/internals/features/users/user/model"
	helper "coursedesk_backend/internals/helpers"
	helpersAuth "coursedesk_backend/internals/helpers/auth"
)

// AuthMiddleware accepts an access token (Bearer, x-auth-token or cookie),
// rejects blacklisted or expired tokens and loads the current user's roles.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}
		tokenString = strings.Trim(tokenString, "\"'")

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Error("[auth] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		blacklisted, err := helpersAuth.IsBlacklisted(c.UserContext(), db, tokenString, secretKey)
		if err != nil {
			log.WithError(err).Error("[auth] blacklist lookup failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		claims, err := ParseAccessToken(tokenString, secretKey)
		if err != nil {
			log.WithError(err).Debug("[auth] token rejected")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		user, err := loadUser(c, db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.WithError(err).Error("[auth] load user failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		// roles come from the database so permission changes apply immediately
		c.Locals(helper.LocUserID, user.ID.String())
		c.Locals(helper.LocUserName, user.UserName)
		c.Locals(helper.LocIsAdmin, user.IsAdmin)
		c.Locals(helper.LocRoles, []userModel.UserRole(user.Roles))
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

// ParseAccessToken verifies signature, expiry and token type.
func ParseAccessToken(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	if typ, _ := claims["typ"].(string); typ != "" && typ != "access" {
		return nil, errors.New("not an access token")
	}
	return claims, nil
}
