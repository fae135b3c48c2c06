package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/contacts/contacts/dto"
	"coursedesk_backend/internals/features/contacts/contacts/model"
	followupModel "coursedesk_backend/internals/features/contacts/followups/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/notifications"
)

type ContactController struct {
	DB     *gorm.DB
	Mailer notifications.Sender
}

func NewContactController(db *gorm.DB, mailer notifications.Sender) *ContactController {
	return &ContactController{DB: db, Mailer: mailer}
}

// POST /api/public/contacts
func (cc *ContactController) Create(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	if !req.Reachable() {
		return helper.JsonValidationError(c, helper.FieldError("contact_phone", "Phone or email is required"))
	}

	row := req.ToModel()
	if err := cc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.WithError(err).Error("[contacts] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save contact")
	}

	if cc.Mailer != nil {
		enquiry := dto.ToEnquiry(&row)
		notifications.Dispatch("contact enquiry", func(ctx context.Context) error {
			return cc.Mailer.SendContactEnquiry(ctx, enquiry)
		})
	}
	return helper.JsonCreated(c, "Thank you, we will get back to you soon", row)
}

// GET /api/a/contacts?closed=&q=
func (cc *ContactController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := cc.DB.WithContext(c.UserContext()).Model(&model.ContactModel{})
	if raw := strings.TrimSpace(c.Query("closed")); raw != "" {
		closed, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "closed must be true or false")
		}
		q = q.Where("contact_is_contact_close = ?", closed)
	}
	if p.Q != "" {
		like := p.LikePattern()
		q = q.Where(
			"LOWER(contact_name) LIKE ? OR LOWER(contact_email) LIKE ? OR contact_phone LIKE ? OR LOWER(contact_subject) LIKE ? OR LOWER(contact_course) LIKE ?",
			like, like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[contacts] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contacts")
	}
	var rows []model.ContactModel
	if err := q.Order("contact_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[contacts] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve contacts")
	}
	return helper.JsonList(c, "Contacts fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/a/contacts/:id includes the follow-ups, newest first.
func (cc *ContactController) Get(c *fiber.Ctx) error {
	row, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out := dto.ContactDetail{ContactModel: *row, Followups: []followupModel.FollowupModel{}}
	if err := cc.DB.WithContext(c.UserContext()).
		Where("followup_contact_id = ?", row.ContactID).
		Order("followup_created_at DESC").
		Find(&out.Followups).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Contact fetched", out)
}

// PATCH /api/a/contacts/:id/close
func (cc *ContactController) SetClosed(c *fiber.Ctx) error {
	row, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CloseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	row.ContactIsClosed = *req.IsContactClose
	if err := cc.DB.WithContext(c.UserContext()).Model(row).
		Update("contact_is_contact_close", row.ContactIsClosed).Error; err != nil {
		log.WithError(err).Error("[contacts] close failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update contact")
	}
	msg := "Contact reopened"
	if row.ContactIsClosed {
		msg = "Contact closed"
	}
	return helper.JsonUpdated(c, msg, row)
}

// DELETE /api/a/contacts/:id removes its follow-ups too.
func (cc *ContactController) Delete(c *fiber.Ctx) error {
	row, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	err = cc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("followup_contact_id = ?", row.ContactID).Delete(&followupModel.FollowupModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ContactModel{}, "contact_id = ?", row.ContactID).Error
	})
	if err != nil {
		log.WithError(err).Error("[contacts] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete contact")
	}
	return helper.JsonDeleted(c, "Contact deleted", fiber.Map{"contact_id": row.ContactID})
}

func (cc *ContactController) find(c *fiber.Ctx) (*model.ContactModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.ContactModel
	if err := cc.DB.WithContext(c.UserContext()).First(&row, "contact_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Contact not found")
		}
		return nil, err
	}
	return &row, nil
}
