package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/catalog/mentors/dto"
	"coursedesk_backend/internals/features/catalog/mentors/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
)

type MentorController struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewMentorController(db *gorm.DB, mediaSvc *media.Service) *MentorController {
	return &MentorController{DB: db, Media: mediaSvc}
}

// GET /mentors?q= matches name or degree.
func (mc *MentorController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := mc.DB.WithContext(c.UserContext()).Model(&model.MentorModel{})
	if p.Q != "" {
		like := p.LikePattern()
		q = q.Where("LOWER(mentor_name) LIKE ? OR LOWER(mentor_degree) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[mentors] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count mentors")
	}
	var rows []model.MentorModel
	if err := q.Order("mentor_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[mentors] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve mentors")
	}
	return helper.JsonList(c, "Mentors fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (mc *MentorController) Get(c *fiber.Ctx) error {
	row, err := mc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Mentor fetched", row)
}

func (mc *MentorController) Create(c *fiber.Ctx) error {
	var req dto.MentorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := c.UserContext()
	image, err := mc.Media.Save(ctx, "mentors", req.MentorImage)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}

	row := model.MentorModel{MentorImage: image, MentorUserID: helper.CreatorID(c)}
	req.Apply(&row)
	if err := mc.DB.WithContext(ctx).Create(&row).Error; err != nil {
		mc.Media.Remove(ctx, image)
		log.WithError(err).Error("[mentors] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create mentor")
	}
	return helper.JsonCreated(c, "Mentor created", row)
}

func (mc *MentorController) Update(c *fiber.Ctx) error {
	row, err := mc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.MentorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := c.UserContext()
	previous := row.MentorImage
	image, err := mc.Media.Replace(ctx, "mentors", req.MentorImage, previous)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}
	req.Apply(row)
	row.MentorImage = image

	err = mc.DB.WithContext(ctx).Save(row).Error
	mc.Media.Settle(ctx, err, image, previous)
	if err != nil {
		log.WithError(err).Error("[mentors] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update mentor")
	}
	return helper.JsonUpdated(c, "Mentor updated", row)
}

func (mc *MentorController) Delete(c *fiber.Ctx) error {
	row, err := mc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()
	if err := mc.DB.WithContext(ctx).Delete(&model.MentorModel{}, "mentor_id = ?", row.MentorID).Error; err != nil {
		log.WithError(err).Error("[mentors] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete mentor")
	}
	mc.Media.Remove(ctx, row.MentorImage)
	return helper.JsonDeleted(c, "Mentor deleted", fiber.Map{"mentor_id": row.MentorID})
}

func (mc *MentorController) find(c *fiber.Ctx) (*model.MentorModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.MentorModel
	if err := mc.DB.WithContext(c.UserContext()).First(&row, "mentor_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Mentor not found")
		}
		return nil, err
	}
	return &row, nil
}
