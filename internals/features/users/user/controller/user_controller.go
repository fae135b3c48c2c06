package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authHelper "coursedesk_backend/internals/features/users/auth/helper"
	authModel "coursedesk_backend/internals/features/users/auth/model"
	authRepo "coursedesk_backend/internals/features/users/auth/repository"
	"coursedesk_backend/internals/features/users/user/dto"
	"coursedesk_backend/internals/features/users/user/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
	"coursedesk_backend/internals/notifications"
)

const avatarFolder = "users/avatar"

type UserController struct {
	DB     *gorm.DB
	Media  *media.Service
	Mailer notifications.Sender
}

func NewUserController(db *gorm.DB, mediaSvc *media.Service, mailer notifications.Sender) *UserController {
	return &UserController{DB: db, Media: mediaSvc, Mailer: mailer}
}

// GET /api/a/users?q=
func (uc *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if p.Q != "" {
		like := p.LikePattern()
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[users] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&users).Error; err != nil {
		log.WithError(err).Error("[users] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.JsonList(c, "Users fetched", users, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/users/:id
func (uc *UserController) Get(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "User fetched", user)
}

// POST /api/a/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	roles := model.DefaultRoles()
	if req.Roles != nil {
		normalized, err := model.NormalizeRoles(req.Roles)
		if err != nil {
			return helper.JsonValidationError(c, helper.FieldError("roles", err.Error()))
		}
		roles = normalized
	}

	ctx := c.UserContext()
	if err := uc.ensureUnique(ctx, req.UserName, req.Email, uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user := req.ToModel()
	user.Password = hash
	user.Roles = roles

	avatar, err := uc.Media.Save(ctx, avatarFolder, req.Avatar)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}
	user.Avatar = avatar

	if err := uc.DB.WithContext(ctx).Create(user).Error; err != nil {
		uc.Media.Remove(ctx, avatar)
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User name or email is already in use")
		}
		log.WithError(err).Error("[users] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	if uc.Mailer != nil {
		to, name := user.Email, user.UserName
		notifications.Dispatch("welcome", func(ctx context.Context) error {
			return uc.Mailer.SendWelcome(ctx, to, name)
		})
	}

	return helper.JsonCreated(c, "User created", user)
}

// PATCH /api/a/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	if req.IsActive != nil && !*req.IsActive && uc.isSelf(c, user.ID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}

	if req.Roles != nil {
		roles, err := model.NormalizeRoles(req.Roles)
		if err != nil {
			return helper.JsonValidationError(c, helper.FieldError("roles", err.Error()))
		}
		user.Roles = roles
	}

	wasActive := user.IsActive
	req.Apply(user)

	ctx := c.UserContext()
	if err := uc.ensureUnique(ctx, user.UserName, user.Email, user.ID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if req.Password != "" {
		hash, err := authHelper.HashPassword(req.Password)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		user.Password = hash
	}

	previous := user.Avatar
	avatar, err := uc.Media.Replace(ctx, avatarFolder, req.Avatar, previous)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}
	user.Avatar = avatar

	err = uc.DB.WithContext(ctx).Save(user).Error
	uc.Media.Settle(ctx, err, avatar, previous)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User name or email is already in use")
		}
		log.WithError(err).Error("[users] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	if req.Password != "" || (wasActive && !user.IsActive) {
		uc.revokeSessions(ctx, user.ID)
	}

	return helper.JsonUpdated(c, "User updated", user)
}

// PATCH /api/a/users/:id/active
func (uc *UserController) SetActive(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	if !*req.IsActive && uc.isSelf(c, user.ID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}

	ctx := c.UserContext()
	if err := uc.DB.WithContext(ctx).Model(user).Update("is_active", *req.IsActive).Error; err != nil {
		log.WithError(err).Error("[users] set active failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	user.IsActive = *req.IsActive
	if !user.IsActive {
		uc.revokeSessions(ctx, user.ID)
	}

	return helper.JsonUpdated(c, "User status updated", user)
}

// DELETE /api/a/users/:id
func (uc *UserController) Delete(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if uc.isSelf(c, user.ID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	ctx := c.UserContext()
	err = uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UserModel{}, "id = ?", user.ID).Error
	})
	if err != nil {
		log.WithError(err).Error("[users] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	uc.Media.Remove(ctx, user.Avatar)

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": user.ID})
}

/* =======================================================
   helpers
   ======================================================= */

func (uc *UserController) find(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var user model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).First(&user, "id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (uc *UserController) isSelf(c *fiber.Ctx, id uuid.UUID) bool {
	me, err := helper.GetUserIDFromToken(c)
	return err == nil && me == id
}

func (uc *UserController) ensureUnique(ctx context.Context, userName, email string, exclude uuid.UUID) error {
	scope := helper.ExcludeID("id", exclude)
	taken, err := helper.IsTakenCI(ctx, uc.DB, "users", "user_name", userName, scope)
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "User name is already taken")
	}
	taken, err = helper.IsTakenCI(ctx, uc.DB, "users", "email", email, scope)
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "Email is already registered")
	}
	return nil
}

func (uc *UserController) revokeSessions(ctx context.Context, userID uuid.UUID) {
	if err := authRepo.RevokeUserRefreshTokens(ctx, uc.DB, userID, time.Now().UTC()); err != nil {
		log.WithError(err).Warn("[users] revoke sessions failed")
	}
}
