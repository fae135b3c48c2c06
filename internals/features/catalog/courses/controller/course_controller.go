package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/catalog/courses/dto"
	"coursedesk_backend/internals/features/catalog/courses/model"
	demoModel "coursedesk_backend/internals/features/catalog/demos/model"
	parentModel "coursedesk_backend/internals/features/catalog/parent_courses/model"
	testimonialModel "coursedesk_backend/internals/features/marketing/testimonials/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
)

const (
	thumbnailFolder = "courses/thumbnail"
	slugMaxLen      = 220
)

type CourseController struct {
	DB    *gorm.DB
	Media *media.Service
}

func NewCourseController(db *gorm.DB, mediaSvc *media.Service) *CourseController {
	return &CourseController{DB: db, Media: mediaSvc}
}

/* =======================================================
   LIST / GET
   ======================================================= */

// GET /courses?q=&parent_course_id=&enabled=
func (cc *CourseController) List(c *fiber.Ctx) error {
	return cc.list(c, false)
}

// GET /api/public/courses lists enabled courses only.
func (cc *CourseController) ListPublic(c *fiber.Ctx) error {
	return cc.list(c, true)
}

func (cc *CourseController) list(c *fiber.Ctx, enabledOnly bool) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := cc.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if p.Q != "" {
		q = q.Where("LOWER(course_name) LIKE ?", p.LikePattern())
	}
	if raw := strings.TrimSpace(c.Query("parent_course_id")); raw != "" {
		parentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent_course_id")
		}
		q = q.Where("course_parent_course_id = ?", parentID)
	}
	if enabledOnly {
		q = q.Where("course_enabled = ?", true)
	} else if raw := strings.TrimSpace(c.Query("enabled")); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enabled filter")
		}
		q = q.Where("course_enabled = ?", enabled)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[courses] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := q.Order("course_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[courses] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	items := make([]dto.CourseListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ToCourseListItem(r))
	}
	return helper.JsonList(c, "Courses fetched", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /courses/:id
func (cc *CourseController) Get(c *fiber.Ctx) error {
	course, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Course fetched", course)
}

// GET /api/public/courses/slug/:slug
func (cc *CourseController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	var course model.CourseModel
	err := cc.DB.WithContext(c.UserContext()).
		Where("course_slug = ? AND course_enabled = ?", slug, true).
		Take(&course).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Course fetched", course)
}

/* =======================================================
   CREATE / UPDATE
   ======================================================= */

// POST /courses
func (cc *CourseController) Create(c *fiber.Ctx) error {
	req, fieldErrs, err := cc.parse(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if req.CourseThumbnail == "" {
		return helper.JsonValidationError(c, helper.FieldError("course_thumbnail", "course_thumbnail is required"))
	}

	course := model.CourseModel{
		CourseEnabled: true,
		CourseUserID:  helper.CreatorID(c),
	}
	if err := cc.save(c, req, &course, true); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Course created", course)
}

// PUT /courses/:id
func (cc *CourseController) Update(c *fiber.Ctx) error {
	course, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, fieldErrs, err := cc.parse(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if req.CourseThumbnail == "" && course.CourseThumbnail == "" {
		return helper.JsonValidationError(c, helper.FieldError("course_thumbnail", "course_thumbnail is required"))
	}

	if err := cc.save(c, req, course, false); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Course updated", course)
}

// PATCH /courses/:id/enabled
func (cc *CourseController) SetEnabled(c *fiber.Ctx) error {
	course, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.SetEnabledRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	course.CourseEnabled = *req.CourseEnabled
	if err := cc.DB.WithContext(c.UserContext()).Model(course).Update("course_enabled", course.CourseEnabled).Error; err != nil {
		log.WithError(err).Error("[courses] toggle failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	msg := "Course disabled"
	if course.CourseEnabled {
		msg = "Course enabled"
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"course_id": course.CourseID, "course_enabled": course.CourseEnabled})
}

// POST /courses/:id/sections/reorder
func (cc *CourseController) ReorderSections(c *fiber.Ctx) error {
	course, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ReorderSectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	sections, err := dto.MoveSection(course.CourseSections, *req.From, *req.To)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	course.CourseSections = sections
	if err := cc.DB.WithContext(c.UserContext()).Model(course).Update("course_sections", course.CourseSections).Error; err != nil {
		log.WithError(err).Error("[courses] reorder failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reorder sections")
	}
	return helper.JsonUpdated(c, "Sections reordered", course.CourseSections)
}

// DELETE /courses/:id removes the course and its demos.
func (cc *CourseController) Delete(c *fiber.Ctx) error {
	course, err := cc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ctx := c.UserContext()
	err = cc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("demo_course_id = ?", course.CourseID).Delete(&demoModel.DemoModel{}).Error; err != nil {
			return err
		}
		if err := pruneTestimonialCourse(tx, course.CourseID); err != nil {
			return err
		}
		return tx.Delete(&model.CourseModel{}, "course_id = ?", course.CourseID).Error
	})
	if err != nil {
		log.WithError(err).Error("[courses] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	cc.Media.Remove(ctx, course.CourseThumbnail)

	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": course.CourseID})
}

/* =======================================================
   helpers
   ======================================================= */

// pruneTestimonialCourse drops courseID from every testimonial that lists it.
func pruneTestimonialCourse(tx *gorm.DB, courseID uuid.UUID) error {
	var rows []testimonialModel.TestimonialModel
	if err := tx.Select("testimonial_id", "testimonial_course_ids").Find(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		kept := make(datatypes.JSONSlice[uuid.UUID], 0, len(row.TestimonialCourseIDs))
		for _, id := range row.TestimonialCourseIDs {
			if id != courseID {
				kept = append(kept, id)
			}
		}
		if len(kept) == len(row.TestimonialCourseIDs) {
			continue
		}
		if err := tx.Model(&testimonialModel.TestimonialModel{}).
			Where("testimonial_id = ?", row.TestimonialID).
			Update("testimonial_course_ids", kept).Error; err != nil {
			return err
		}
	}
	return nil
}

func (cc *CourseController) find(c *fiber.Ctx) (*model.CourseModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var course model.CourseModel
	if err := cc.DB.WithContext(c.UserContext()).First(&course, "course_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, err
	}
	return &course, nil
}

// parse reads, normalises and validates the course form.
func (cc *CourseController) parse(c *fiber.Ctx) (*dto.CourseRequest, map[string][]string, error) {
	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, helper.ValidationErrors(err), nil
	}

	var n int64
	if err := cc.DB.WithContext(c.UserContext()).Model(&parentModel.ParentCourseModel{}).
		Where("parent_course_id = ?", req.CourseParentCourseID).Count(&n).Error; err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, helper.FieldError("course_parent_course_id", "course_parent_course_id does not exist"), nil
	}
	return &req, nil, nil
}

func (cc *CourseController) save(c *fiber.Ctx, req *dto.CourseRequest, course *model.CourseModel, create bool) error {
	ctx := c.UserContext()

	base := helper.Slugify(req.SlugSource(), slugMaxLen)
	if create || base != course.CourseSlug {
		slug, err := helper.EnsureUniqueSlugCI(ctx, cc.DB, "courses", "course_slug", base,
			helper.ExcludeID("course_id", course.CourseID), slugMaxLen)
		if err != nil {
			return err
		}
		course.CourseSlug = slug
	}

	previous := course.CourseThumbnail
	thumb, err := cc.Media.Replace(ctx, thumbnailFolder, req.CourseThumbnail, previous)
	if err != nil {
		return media.ToFiberError(err)
	}

	req.Apply(course)
	course.CourseThumbnail = thumb
	course.CourseParentCourseID = uuid.MustParse(req.CourseParentCourseID)

	db := cc.DB.WithContext(ctx)
	if create {
		err = db.Create(course).Error
	} else {
		err = db.Save(course).Error
	}
	cc.Media.Settle(ctx, err, thumb, previous)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Course slug already exists")
		}
		log.WithError(err).Error("[courses] save failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save course")
	}
	return nil
}
