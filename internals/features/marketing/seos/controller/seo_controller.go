package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coursedesk_backend/internals/features/marketing/seos/dto"
	"coursedesk_backend/internals/features/marketing/seos/model"
	helper "coursedesk_backend/internals/helpers"
)

type SeoController struct {
	DB *gorm.DB
}

func NewSeoController(db *gorm.DB) *SeoController {
	return &SeoController{DB: db}
}

func (sc *SeoController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := sc.DB.WithContext(c.UserContext()).Model(&model.SeoModel{})
	if p.Q != "" {
		q = q.Where("LOWER(seo_page_name) LIKE ? OR LOWER(seo_title) LIKE ?", p.LikePattern(), p.LikePattern())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[seos] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count SEO entries")
	}
	var rows []model.SeoModel
	if err := q.Order("seo_page_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[seos] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve SEO entries")
	}
	return helper.JsonList(c, "SEO entries fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /seos/:page_name
func (sc *SeoController) GetByPage(c *fiber.Ctx) error {
	row, err := sc.byPage(c, dto.NormalizePageName(c.Params("page_name")))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "SEO fetched", row)
}

// PUT /seos inserts or overwrites the entry of seo_page_name.
func (sc *SeoController) Upsert(c *fiber.Ctx) error {
	var req dto.SeoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	row := req.ToModel()
	err := sc.DB.WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "seo_page_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"seo_title", "seo_description", "seo_url", "seo_blog_or_service_id", "seo_updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		log.WithError(err).Error("[seos] upsert failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save SEO")
	}

	saved, err := sc.byPage(c, req.SeoPageName)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "SEO saved", saved)
}

func (sc *SeoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := sc.DB.WithContext(c.UserContext()).Delete(&model.SeoModel{}, "seo_id = ?", id)
	if res.Error != nil {
		log.WithError(res.Error).Error("[seos] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete SEO")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "SEO not found")
	}
	return helper.JsonDeleted(c, "SEO deleted", fiber.Map{"seo_id": id})
}

func (sc *SeoController) byPage(c *fiber.Ctx, page string) (*model.SeoModel, error) {
	var row model.SeoModel
	if err := sc.DB.WithContext(c.UserContext()).Where("seo_page_name = ?", page).Take(&row).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "SEO not found")
		}
		return nil, err
	}
	return &row, nil
}
