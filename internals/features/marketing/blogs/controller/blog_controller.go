package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/marketing/blogs/dto"
	"coursedesk_backend/internals/features/marketing/blogs/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
)

const (
	imageFolder = "blogs"
	slugMaxLen  = 160
)

type BlogController struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewBlogController(db *gorm.DB, mediaSvc *media.Service) *BlogController {
	return &BlogController{DB: db, Media: mediaSvc}
}

// GET /blogs?q=  (q matches title)
func (bc *BlogController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := bc.DB.WithContext(c.UserContext()).Model(&model.BlogModel{})
	if p.Q != "" {
		q = q.Where("LOWER(blog_title) LIKE ?", p.LikePattern())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[blogs] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count blogs")
	}
	var rows []model.BlogModel
	if err := q.Order("blog_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[blogs] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve blogs")
	}
	return helper.JsonList(c, "Blogs fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (bc *BlogController) Get(c *fiber.Ctx) error {
	row, err := bc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Blog fetched", row)
}

func (bc *BlogController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	var row model.BlogModel
	if err := bc.DB.WithContext(c.UserContext()).Where("blog_slug = ?", slug).Take(&row).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Blog fetched", row)
}

func (bc *BlogController) Create(c *fiber.Ctx) error {
	req, ok, err := parse(c)
	if !ok {
		return err
	}

	ctx := c.UserContext()
	image, err := bc.Media.Save(ctx, imageFolder, req.BlogImage)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}

	row := model.BlogModel{BlogImage: image, BlogUserID: helper.CreatorID(c)}
	if err := bc.save(c, req, &row, true); err != nil {
		bc.Media.Remove(ctx, image)
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Blog created", row)
}

func (bc *BlogController) Update(c *fiber.Ctx) error {
	row, err := bc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, ok, err := parse(c)
	if !ok {
		return err
	}

	ctx := c.UserContext()
	previous := row.BlogImage
	image, err := bc.Media.Replace(ctx, imageFolder, req.BlogImage, previous)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}
	row.BlogImage = image

	err = bc.save(c, req, row, false)
	bc.Media.Settle(ctx, err, image, previous)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Blog updated", row)
}

func (bc *BlogController) Delete(c *fiber.Ctx) error {
	row, err := bc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()
	if err := bc.DB.WithContext(ctx).Delete(&model.BlogModel{}, "blog_id = ?", row.BlogID).Error; err != nil {
		log.WithError(err).Error("[blogs] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete blog")
	}
	bc.Media.Remove(ctx, row.BlogImage)
	return helper.JsonDeleted(c, "Blog deleted", fiber.Map{"blog_id": row.BlogID})
}

func (bc *BlogController) find(c *fiber.Ctx) (*model.BlogModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.BlogModel
	if err := bc.DB.WithContext(c.UserContext()).First(&row, "blog_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Blog not found")
		}
		return nil, err
	}
	return &row, nil
}

func parse(c *fiber.Ctx) (*dto.BlogRequest, bool, error) {
	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, false, helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	return &req, true, nil
}

// save keeps the slug unless its source changed, then writes the row.
func (bc *BlogController) save(c *fiber.Ctx, req *dto.BlogRequest, row *model.BlogModel, create bool) error {
	ctx := c.UserContext()

	base := helper.Slugify(req.SlugSource(), slugMaxLen)
	if create || base != row.BlogSlug {
		slug, err := helper.EnsureUniqueSlugCI(ctx, bc.DB, "blogs", "blog_slug", base,
			helper.ExcludeID("blog_id", row.BlogID), slugMaxLen)
		if err != nil {
			return err
		}
		row.BlogSlug = slug
	}
	req.Apply(row)

	db := bc.DB.WithContext(ctx)
	var err error
	if create {
		err = db.Create(row).Error
	} else {
		err = db.Save(row).Error
	}
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Blog slug already exists")
		}
		log.WithError(err).Error("[blogs] save failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save blog")
	}
	return nil
}
