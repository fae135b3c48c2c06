package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	contactModel "coursedesk_backend/internals/features/contacts/contacts/model"
	"coursedesk_backend/internals/features/contacts/followups/dto"
	"coursedesk_backend/internals/features/contacts/followups/model"
	statusModel "coursedesk_backend/internals/features/contacts/statuses/model"
	helper "coursedesk_backend/internals/helpers"
)

type FollowupController struct {
	DB *gorm.DB
}

func NewFollowupController(db *gorm.DB) *FollowupController {
	return &FollowupController{DB: db}
}

// GET /followups returns [{contact_id, contact, followups[]}].
// Rows are ordered by update time so each group lands at its latest activity.
func (fc *FollowupController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var rows []model.FollowupModel
	if err := fc.DB.WithContext(ctx).
		Order("followup_updated_at DESC").
		Order("followup_created_at DESC").
		Find(&rows).Error; err != nil {
		log.WithError(err).Error("[followups] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve follow-ups")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	seen := map[uuid.UUID]struct{}{}
	for _, f := range rows {
		if _, ok := seen[f.FollowupContactID]; !ok {
			seen[f.FollowupContactID] = struct{}{}
			ids = append(ids, f.FollowupContactID)
		}
	}

	contacts := map[uuid.UUID]*contactModel.ContactModel{}
	if len(ids) > 0 {
		var list []contactModel.ContactModel
		if err := fc.DB.WithContext(ctx).Where("contact_id IN ?", ids).Find(&list).Error; err != nil {
			log.WithError(err).Error("[followups] contact lookup failed")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve follow-ups")
		}
		for i := range list {
			contacts[list[i].ContactID] = &list[i]
		}
	}

	return helper.JsonOK(c, "Follow-ups fetched", dto.GroupByContact(rows, contacts))
}

// GET /contacts/:id/followups
func (fc *FollowupController) ListByContact(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var n int64
	if err := fc.DB.WithContext(c.UserContext()).Model(&contactModel.ContactModel{}).
		Where("contact_id = ?", id).Count(&n).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Contact not found")
	}

	rows := []model.FollowupModel{}
	if err := fc.DB.WithContext(c.UserContext()).
		Where("followup_contact_id = ?", id).
		Order("followup_created_at DESC").
		Find(&rows).Error; err != nil {
		log.WithError(err).Error("[followups] list by contact failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve follow-ups")
	}
	return helper.JsonOK(c, "Follow-ups fetched", rows)
}

// POST /followups. The status is stored under its canonical name.
func (fc *FollowupController) Create(c *fiber.Ctx) error {
	var req dto.FollowupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := c.UserContext()
	contactID := uuid.MustParse(req.ContactID)

	var contact contactModel.ContactModel
	if err := fc.DB.WithContext(ctx).First(&contact, "contact_id = ?", contactID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonValidationError(c, helper.FieldError("contact_id", "Contact not found"))
		}
		return helper.FromFiberError(c, err)
	}

	var status statusModel.StatusModel
	if err := fc.DB.WithContext(ctx).
		Where("LOWER(status_name) = ?", strings.ToLower(req.Status)).
		Take(&status).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonValidationError(c, helper.FieldError("status", "Unknown status"))
		}
		return helper.FromFiberError(c, err)
	}

	row := model.FollowupModel{
		FollowupContactID: contactID,
		FollowupStatus:    status.StatusName,
		FollowupMessage:   req.FollowupMessage,
		FollowupUserID:    helper.CreatorID(c),
	}
	if err := fc.DB.WithContext(ctx).Create(&row).Error; err != nil {
		log.WithError(err).Error("[followups] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save follow-up")
	}
	return helper.JsonCreated(c, "Follow-up added", row)
}

func (fc *FollowupController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := fc.DB.WithContext(c.UserContext()).Delete(&model.FollowupModel{}, "followup_id = ?", id)
	if res.Error != nil {
		log.WithError(res.Error).Error("[followups] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete follow-up")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Follow-up not found")
	}
	return helper.JsonDeleted(c, "Follow-up deleted", fiber.Map{"followup_id": id})
}
