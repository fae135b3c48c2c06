package service

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authHelper "coursedesk_backend/internals/features/users/auth/helper"
	authRepo "coursedesk_backend/internals/features/users/auth/repository"
	helper "coursedesk_backend/internals/helpers"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.Validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	user, err := currentUser(db, c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	ctx := c.UserContext()
	if err := authRepo.UpdateUserPassword(ctx, db, user.ID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	// other sessions must sign in again
	if err := authRepo.RevokeUserRefreshTokens(ctx, db, user.ID, nowUTC()); err != nil {
		log.WithError(err).Warn("[change-password] revoke refresh tokens failed")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
