package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/marketing/faqs/dto"
	"coursedesk_backend/internals/features/marketing/faqs/model"
	helper "coursedesk_backend/internals/helpers"
)

type FAQController struct {
	DB *gorm.DB
}

func NewFAQController(db *gorm.DB) *FAQController {
	return &FAQController{DB: db}
}

// GET /faqs?q=&service_id=
func (fc *FAQController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	serviceID := strings.TrimSpace(c.Query("service_id"))

	q := fc.DB.WithContext(c.UserContext()).Model(&model.FAQModel{})
	if p.Q != "" {
		q = q.Where("LOWER(faq_question) LIKE ? OR LOWER(faq_answer) LIKE ?", p.LikePattern(), p.LikePattern())
	}

	var rows []model.FAQModel
	if err := q.Order("faq_created_at DESC").Find(&rows).Error; err != nil {
		log.WithError(err).Error("[faqs] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve FAQs")
	}

	if serviceID != "" {
		kept := rows[:0]
		for i := range rows {
			if rows[i].AppliesTo(serviceID) {
				kept = append(kept, rows[i])
			}
		}
		rows = kept
	}

	total := int64(len(rows))
	start, end := bounds(len(rows), p.Offset, p.Limit)
	return helper.JsonList(c, "FAQs fetched", rows[start:end], helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func bounds(n, offset, limit int) (int, int) {
	if offset > n {
		offset = n
	}
	end := offset + limit
	if end > n {
		end = n
	}
	return offset, end
}

func (fc *FAQController) Get(c *fiber.Ctx) error {
	row, err := fc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "FAQ fetched", row)
}

func (fc *FAQController) Create(c *fiber.Ctx) error {
	req, ok, err := parse(c)
	if !ok {
		return err
	}
	row := model.FAQModel{FAQUserID: helper.CreatorID(c)}
	req.Apply(&row)
	if err := fc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.WithError(err).Error("[faqs] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create FAQ")
	}
	return helper.JsonCreated(c, "FAQ created", row)
}

func (fc *FAQController) Update(c *fiber.Ctx) error {
	row, err := fc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, ok, err := parse(c)
	if !ok {
		return err
	}
	req.Apply(row)
	if err := fc.DB.WithContext(c.UserContext()).Save(row).Error; err != nil {
		log.WithError(err).Error("[faqs] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update FAQ")
	}
	return helper.JsonUpdated(c, "FAQ updated", row)
}

func (fc *FAQController) Delete(c *fiber.Ctx) error {
	row, err := fc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := fc.DB.WithContext(c.UserContext()).Delete(&model.FAQModel{}, "faq_id = ?", row.FAQID).Error; err != nil {
		log.WithError(err).Error("[faqs] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete FAQ")
	}
	return helper.JsonDeleted(c, "FAQ deleted", fiber.Map{"faq_id": row.FAQID})
}

func (fc *FAQController) find(c *fiber.Ctx) (*model.FAQModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.FAQModel
	if err := fc.DB.WithContext(c.UserContext()).First(&row, "faq_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "FAQ not found")
		}
		return nil, err
	}
	return &row, nil
}

func parse(c *fiber.Ctx) (*dto.FAQRequest, bool, error) {
	var req dto.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, false, helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	if !req.FAQShowForAll && len(req.FAQServiceIDs) == 0 {
		return nil, false, helper.JsonValidationError(c, helper.FieldError("faq_service_ids",
			"Select at least one service or show the FAQ for all services"))
	}
	return &req, true, nil
}
