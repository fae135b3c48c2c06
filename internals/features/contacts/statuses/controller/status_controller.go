package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	followupModel "coursedesk_backend/internals/features/contacts/followups/model"
	"coursedesk_backend/internals/features/contacts/statuses/dto"
	"coursedesk_backend/internals/features/contacts/statuses/model"
	helper "coursedesk_backend/internals/helpers"
)

type StatusController struct {
	DB *gorm.DB
}

func NewStatusController(db *gorm.DB) *StatusController {
	return &StatusController{DB: db}
}

// GET /statuses lists every status for the follow-up dropdown, built-in ones first.
func (sc *StatusController) List(c *fiber.Ctx) error {
	rows := []model.StatusModel{}
	if err := sc.DB.WithContext(c.UserContext()).
		Order("status_is_system DESC").
		Order("LOWER(status_name) ASC").
		Find(&rows).Error; err != nil {
		log.WithError(err).Error("[statuses] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve statuses")
	}
	return helper.JsonOK(c, "Statuses fetched", rows)
}

func (sc *StatusController) Create(c *fiber.Ctx) error {
	req, ok, err := parse(c)
	if !ok {
		return err
	}
	ctx := c.UserContext()

	taken, err := helper.IsTakenCI(ctx, sc.DB, "statuses", "status_name", req.StatusName, nil)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Status already exists")
	}

	row := model.StatusModel{StatusName: req.StatusName}
	if err := sc.DB.WithContext(ctx).Create(&row).Error; err != nil {
		log.WithError(err).Error("[statuses] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create status")
	}
	return helper.JsonCreated(c, "Status created", row)
}

// PUT /statuses/:id renames the status and the follow-ups that carry it.
func (sc *StatusController) Update(c *fiber.Ctx) error {
	row, err := sc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if row.StatusIsSystem {
		return helper.JsonError(c, fiber.StatusBadRequest, "Built-in statuses cannot be changed")
	}
	req, ok, err := parse(c)
	if !ok {
		return err
	}
	ctx := c.UserContext()

	taken, err := helper.IsTakenCI(ctx, sc.DB, "statuses", "status_name", req.StatusName,
		helper.ExcludeID("status_id", row.StatusID))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Status already exists")
	}

	oldName := row.StatusName
	row.StatusName = req.StatusName
	err = sc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(row).Error; err != nil {
			return err
		}
		return tx.Model(&followupModel.FollowupModel{}).
			Where("followup_status = ?", oldName).
			Update("followup_status", row.StatusName).Error
	})
	if err != nil {
		log.WithError(err).Error("[statuses] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	return helper.JsonUpdated(c, "Status updated", row)
}

func (sc *StatusController) Delete(c *fiber.Ctx) error {
	row, err := sc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if row.StatusIsSystem {
		return helper.JsonError(c, fiber.StatusBadRequest, "Built-in statuses cannot be deleted")
	}
	ctx := c.UserContext()

	var used int64
	if err := sc.DB.WithContext(ctx).Model(&followupModel.FollowupModel{}).
		Where("LOWER(followup_status) = ?", strings.ToLower(row.StatusName)).
		Count(&used).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Status is still used by follow-ups")
	}

	if err := sc.DB.WithContext(ctx).Delete(&model.StatusModel{}, "status_id = ?", row.StatusID).Error; err != nil {
		log.WithError(err).Error("[statuses] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete status")
	}
	return helper.JsonDeleted(c, "Status deleted", fiber.Map{"status_id": row.StatusID})
}

func (sc *StatusController) find(c *fiber.Ctx) (*model.StatusModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.StatusModel
	if err := sc.DB.WithContext(c.UserContext()).First(&row, "status_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Status not found")
		}
		return nil, err
	}
	return &row, nil
}

func parse(c *fiber.Ctx) (*dto.StatusRequest, bool, error) {
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, false, helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	return &req, true, nil
}
