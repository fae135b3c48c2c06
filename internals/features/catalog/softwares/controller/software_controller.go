package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/catalog/softwares/dto"
	"coursedesk_backend/internals/features/catalog/softwares/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
)

const imageFolder = "softwares"

type SoftwareController struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewSoftwareController(db *gorm.DB, mediaSvc *media.Service) *SoftwareController {
	return &SoftwareController{DB: db, Media: mediaSvc}
}

// GET /softwares?q=
func (sc *SoftwareController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := sc.DB.WithContext(c.UserContext()).Model(&model.SoftwareModel{})
	if p.Q != "" {
		q = q.Where("LOWER(software_name) LIKE ?", p.LikePattern())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[softwares] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count softwares")
	}
	var rows []model.SoftwareModel
	if err := q.Order("software_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[softwares] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve softwares")
	}
	return helper.JsonList(c, "Softwares fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /softwares/:id
func (sc *SoftwareController) Get(c *fiber.Ctx) error {
	row, err := sc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Software fetched", row)
}

// POST /softwares
func (sc *SoftwareController) Create(c *fiber.Ctx) error {
	req, ok, err := sc.parse(c)
	if !ok {
		return err
	}
	if req.SoftwareImage == "" {
		return helper.JsonValidationError(c, helper.FieldError("software_image", "software_image is required"))
	}

	row := model.SoftwareModel{SoftwareUserID: helper.CreatorID(c)}
	if err := sc.save(c, req, &row, true); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Software created", row)
}

// PUT /softwares/:id
func (sc *SoftwareController) Update(c *fiber.Ctx) error {
	row, err := sc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, ok, err := sc.parse(c)
	if !ok {
		return err
	}
	if req.SoftwareImage == "" && row.SoftwareImage == "" {
		return helper.JsonValidationError(c, helper.FieldError("software_image", "software_image is required"))
	}

	if err := sc.save(c, req, row, false); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Software updated", row)
}

// DELETE /softwares/:id
func (sc *SoftwareController) Delete(c *fiber.Ctx) error {
	row, err := sc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()
	if err := sc.DB.WithContext(ctx).Delete(&model.SoftwareModel{}, "software_id = ?", row.SoftwareID).Error; err != nil {
		log.WithError(err).Error("[softwares] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete software")
	}
	sc.Media.Remove(ctx, row.SoftwareImage)
	return helper.JsonDeleted(c, "Software deleted", fiber.Map{"software_id": row.SoftwareID})
}

func (sc *SoftwareController) find(c *fiber.Ctx) (*model.SoftwareModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.SoftwareModel
	if err := sc.DB.WithContext(c.UserContext()).First(&row, "software_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Software not found")
		}
		return nil, err
	}
	return &row, nil
}

// parse answers the request itself when the body is invalid; ok is false then.
func (sc *SoftwareController) parse(c *fiber.Ctx) (*dto.SoftwareRequest, bool, error) {
	var req dto.SoftwareRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, false, helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	return &req, true, nil
}

func (sc *SoftwareController) save(c *fiber.Ctx, req *dto.SoftwareRequest, row *model.SoftwareModel, create bool) error {
	ctx := c.UserContext()

	taken, err := helper.IsTakenCI(ctx, sc.DB, "softwares", "software_name", req.SoftwareName,
		helper.ExcludeID("software_id", row.SoftwareID))
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "Software name already exists")
	}

	previous := row.SoftwareImage
	image, err := sc.Media.Replace(ctx, imageFolder, req.SoftwareImage, previous)
	if err != nil {
		return media.ToFiberError(err)
	}
	req.Apply(row)
	row.SoftwareImage = image

	db := sc.DB.WithContext(ctx)
	if create {
		err = db.Create(row).Error
	} else {
		err = db.Save(row).Error
	}
	sc.Media.Settle(ctx, err, image, previous)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Software name already exists")
		}
		log.WithError(err).Error("[softwares] save failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save software")
	}
	return nil
}
