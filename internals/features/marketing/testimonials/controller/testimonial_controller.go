package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	courseModel "coursedesk_backend/internals/features/catalog/courses/model"
	"coursedesk_backend/internals/features/marketing/testimonials/dto"
	"coursedesk_backend/internals/features/marketing/testimonials/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
)

const imageFolder = "testimonials"

type TestimonialController struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewTestimonialController(db *gorm.DB, mediaSvc *media.Service) *TestimonialController {
	return &TestimonialController{DB: db, Media: mediaSvc}
}

// GET /testimonials?q=&course_id=
// course_id keeps testimonials linked to that course plus those shown for all.
// The course match runs in Go since the ids live in a JSON column.
func (tc *TestimonialController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	var courseID uuid.UUID
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id")
		}
		courseID = id
	}

	q := tc.DB.WithContext(c.UserContext()).Model(&model.TestimonialModel{})
	if p.Q != "" {
		q = q.Where("LOWER(testimonial_name) LIKE ?", p.LikePattern())
	}

	var rows []model.TestimonialModel
	if err := q.Order("testimonial_created_at DESC").Find(&rows).Error; err != nil {
		log.WithError(err).Error("[testimonials] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve testimonials")
	}

	if courseID != uuid.Nil {
		kept := rows[:0]
		for i := range rows {
			if rows[i].AppliesTo(courseID) {
				kept = append(kept, rows[i])
			}
		}
		rows = kept
	}

	total := int64(len(rows))
	page := paginate(rows, p.Offset, p.Limit)
	return helper.JsonList(c, "Testimonials fetched", page, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func paginate(rows []model.TestimonialModel, offset, limit int) []model.TestimonialModel {
	if offset >= len(rows) {
		return []model.TestimonialModel{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func (tc *TestimonialController) Get(c *fiber.Ctx) error {
	row, err := tc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Testimonial fetched", row)
}

func (tc *TestimonialController) Create(c *fiber.Ctx) error {
	req, ok, err := tc.parse(c)
	if !ok {
		return err
	}

	ctx := c.UserContext()
	image, err := tc.Media.Save(ctx, imageFolder, req.TestimonialImage)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}

	row := model.TestimonialModel{TestimonialImage: image, TestimonialUserID: helper.CreatorID(c)}
	req.Apply(&row)
	if err := tc.DB.WithContext(ctx).Create(&row).Error; err != nil {
		tc.Media.Remove(ctx, image)
		log.WithError(err).Error("[testimonials] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create testimonial")
	}
	return helper.JsonCreated(c, "Testimonial created", row)
}

func (tc *TestimonialController) Update(c *fiber.Ctx) error {
	row, err := tc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, ok, err := tc.parse(c)
	if !ok {
		return err
	}

	ctx := c.UserContext()
	previous := row.TestimonialImage
	image, err := tc.Media.Replace(ctx, imageFolder, req.TestimonialImage, previous)
	if err != nil {
		return helper.FromFiberError(c, media.ToFiberError(err))
	}
	req.Apply(row)
	row.TestimonialImage = image

	err = tc.DB.WithContext(ctx).Save(row).Error
	tc.Media.Settle(ctx, err, image, previous)
	if err != nil {
		log.WithError(err).Error("[testimonials] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update testimonial")
	}
	return helper.JsonUpdated(c, "Testimonial updated", row)
}

func (tc *TestimonialController) Delete(c *fiber.Ctx) error {
	row, err := tc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()
	if err := tc.DB.WithContext(ctx).Delete(&model.TestimonialModel{}, "testimonial_id = ?", row.TestimonialID).Error; err != nil {
		log.WithError(err).Error("[testimonials] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete testimonial")
	}
	tc.Media.Remove(ctx, row.TestimonialImage)
	return helper.JsonDeleted(c, "Testimonial deleted", fiber.Map{"testimonial_id": row.TestimonialID})
}

func (tc *TestimonialController) find(c *fiber.Ctx) (*model.TestimonialModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.TestimonialModel
	if err := tc.DB.WithContext(c.UserContext()).First(&row, "testimonial_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Testimonial not found")
		}
		return nil, err
	}
	return &row, nil
}

// parse validates the form and the course selection. When ok is false the
// response has already been written.
func (tc *TestimonialController) parse(c *fiber.Ctx) (*dto.TestimonialRequest, bool, error) {
	var req dto.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, false, helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	if req.TestimonialShowForAll {
		return &req, true, nil
	}

	if len(req.TestimonialCourseIDs) == 0 {
		return nil, false, helper.JsonValidationError(c, helper.FieldError("testimonial_course_ids",
			"Select at least one course or show the testimonial for all courses"))
	}
	var n int64
	if err := tc.DB.WithContext(c.UserContext()).Model(&courseModel.CourseModel{}).
		Where("course_id IN ?", req.TestimonialCourseIDs).Count(&n).Error; err != nil {
		return nil, false, helper.FromFiberError(c, err)
	}
	if n != int64(len(req.TestimonialCourseIDs)) {
		return nil, false, helper.JsonValidationError(c, helper.FieldError("testimonial_course_ids",
			"testimonial_course_ids contains a course that does not exist"))
	}
	return &req, true, nil
}
