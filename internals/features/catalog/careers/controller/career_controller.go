package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/catalog/careers/dto"
	"coursedesk_backend/internals/features/catalog/careers/model"
	helper "coursedesk_backend/internals/helpers"
)

type CareerController struct {
	DB *gorm.DB
}

func NewCareerController(db *gorm.DB) *CareerController {
	return &CareerController{DB: db}
}

func (cc *CareerController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := cc.DB.WithContext(c.UserContext()).Model(&model.CareerModel{})
	if p.Q != "" {
		q = q.Where("LOWER(career_name) LIKE ?", p.LikePattern())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[careers] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count careers")
	}
	var rows []model.CareerModel
	if err := q.Order("career_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[careers] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve careers")
	}
	return helper.JsonList(c, "Careers fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (cc *CareerController) Get(c *fiber.Ctx) error {
	row, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Career fetched", row)
}

func (cc *CareerController) Create(c *fiber.Ctx) error {
	var req dto.CareerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := c.UserContext()
	if err := cc.ensureUnique(ctx, req.CareerName, uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	row := model.CareerModel{CareerName: req.CareerName, CareerUserID: helper.CreatorID(c)}
	if err := cc.DB.WithContext(ctx).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Career already exists")
		}
		log.WithError(err).Error("[careers] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create career")
	}
	return helper.JsonCreated(c, "Career created", row)
}

func (cc *CareerController) Update(c *fiber.Ctx) error {
	row, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CareerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := c.UserContext()
	if err := cc.ensureUnique(ctx, req.CareerName, row.CareerID); err != nil {
		return helper.FromFiberError(c, err)
	}

	row.CareerName = req.CareerName
	if err := cc.DB.WithContext(ctx).Save(row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Career already exists")
		}
		log.WithError(err).Error("[careers] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update career")
	}
	return helper.JsonUpdated(c, "Career updated", row)
}

func (cc *CareerController) Delete(c *fiber.Ctx) error {
	row, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := cc.DB.WithContext(c.UserContext()).Delete(&model.CareerModel{}, "career_id = ?", row.CareerID).Error; err != nil {
		log.WithError(err).Error("[careers] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete career")
	}
	return helper.JsonDeleted(c, "Career deleted", fiber.Map{"career_id": row.CareerID})
}

func (cc *CareerController) find(c *fiber.Ctx) (*model.CareerModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.CareerModel
	if err := cc.DB.WithContext(c.UserContext()).First(&row, "career_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Career not found")
		}
		return nil, err
	}
	return &row, nil
}

func (cc *CareerController) ensureUnique(ctx context.Context, name string, exclude uuid.UUID) error {
	taken, err := helper.IsTakenCI(ctx, cc.DB, "careers", "career_name", name, helper.ExcludeID("career_id", exclude))
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "Career already exists")
	}
	return nil
}
