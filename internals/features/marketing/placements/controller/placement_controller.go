package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/marketing/placements/dto"
	"coursedesk_backend/internals/features/marketing/placements/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
)

const imageFolder = "placements"

type PlacementController struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewPlacementController(db *gorm.DB, mediaSvc *media.Service) *PlacementController {
	return &PlacementController{DB: db, Media: mediaSvc}
}

func (pc *PlacementController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := pc.DB.WithContext(c.UserContext()).Model(&model.PlacementModel{})
	if p.Q != "" {
		q = q.Where("LOWER(placement_name) LIKE ?", p.LikePattern())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[placements] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count placements")
	}
	var rows []model.PlacementModel
	if err := q.Order("placement_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[placements] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve placements")
	}
	return helper.JsonList(c, "Placements fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (pc *PlacementController) Get(c *fiber.Ctx) error {
	row, err := pc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Placement fetched", row)
}

func (pc *PlacementController) Create(c *fiber.Ctx) error {
	var req dto.PlacementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	if req.PlacementImage == "" {
		return helper.JsonValidationError(c, helper.FieldError("placement_image", "placement_image is required"))
	}

	ctx := c.UserContext()
	image, err := pc.Media.Save(ctx, imageFolder, req.PlacementImage)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}

	row := model.PlacementModel{
		PlacementName:   req.PlacementName,
		PlacementImage:  image,
		PlacementUserID: helper.CreatorID(c),
	}
	if err := pc.DB.WithContext(ctx).Create(&row).Error; err != nil {
		pc.Media.Remove(ctx, image)
		log.WithError(err).Error("[placements] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create placement")
	}
	return helper.JsonCreated(c, "Placement created", row)
}

func (pc *PlacementController) Update(c *fiber.Ctx) error {
	row, err := pc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.PlacementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := c.UserContext()
	previous := row.PlacementImage
	image, err := pc.Media.Replace(ctx, imageFolder, req.PlacementImage, previous)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}
	row.PlacementName = req.PlacementName
	row.PlacementImage = image

	err = pc.DB.WithContext(ctx).Save(row).Error
	pc.Media.Settle(ctx, err, image, previous)
	if err != nil {
		log.WithError(err).Error("[placements] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update placement")
	}
	return helper.JsonUpdated(c, "Placement updated", row)
}

func (pc *PlacementController) Delete(c *fiber.Ctx) error {
	row, err := pc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()
	if err := pc.DB.WithContext(ctx).Delete(&model.PlacementModel{}, "placement_id = ?", row.PlacementID).Error; err != nil {
		log.WithError(err).Error("[placements] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete placement")
	}
	pc.Media.Remove(ctx, row.PlacementImage)
	return helper.JsonDeleted(c, "Placement deleted", fiber.Map{"placement_id": row.PlacementID})
}

func (pc *PlacementController) find(c *fiber.Ctx) (*model.PlacementModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.PlacementModel
	if err := pc.DB.WithContext(c.UserContext()).First(&row, "placement_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Placement not found")
		}
		return nil, err
	}
	return &row, nil
}
