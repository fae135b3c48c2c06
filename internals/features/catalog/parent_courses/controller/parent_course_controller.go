package controller

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/features/catalog/parent_courses/dto"
	"coursedesk_backend/internals/features/catalog/parent_courses/model"
	helper "coursedesk_backend/internals/helpers"
)

type ParentCourseController struct {
	DB *gorm.DB
}

func NewParentCourseController(db *gorm.DB) *ParentCourseController {
	return &ParentCourseController{DB: db}
}

// GET /parent-courses?q=
func (pc *ParentCourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := pc.DB.WithContext(c.UserContext()).Model(&model.ParentCourseModel{})
	if p.Q != "" {
		q = q.Where("LOWER(parent_course_name) LIKE ?", p.LikePattern())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[parent-courses] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count parent courses")
	}

	var rows []model.ParentCourseModel
	if err := q.Order("parent_course_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[parent-courses] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve parent courses")
	}

	return helper.JsonList(c, "Parent courses fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /parent-courses/:id
func (pc *ParentCourseController) Get(c *fiber.Ctx) error {
	row, err := pc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	count, err := pc.courseCount(c.UserContext(), row.ParentCourseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Parent course fetched", dto.ParentCourseResponse{ParentCourseModel: *row, CourseCount: count})
}

// POST /parent-courses
func (pc *ParentCourseController) Create(c *fiber.Ctx) error {
	var req dto.ParentCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	row := model.ParentCourseModel{ParentCourseUserID: helper.CreatorID(c)}
	if err := pc.save(c, &req, &row, true); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Parent course created", row)
}

// PUT /parent-courses/:id
func (pc *ParentCourseController) Update(c *fiber.Ctx) error {
	row, err := pc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ParentCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := pc.save(c, &req, row, false); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Parent course updated", row)
}

// DELETE /parent-courses/:id
func (pc *ParentCourseController) Delete(c *fiber.Ctx) error {
	row, err := pc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ctx := c.UserContext()
	count, err := pc.courseCount(ctx, row.ParentCourseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Parent course is still used by %d course(s)", count))
	}

	if err := pc.DB.WithContext(ctx).Delete(&model.ParentCourseModel{}, "parent_course_id = ?", row.ParentCourseID).Error; err != nil {
		log.WithError(err).Error("[parent-courses] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parent course")
	}
	return helper.JsonDeleted(c, "Parent course deleted", fiber.Map{"parent_course_id": row.ParentCourseID})
}

func (pc *ParentCourseController) find(c *fiber.Ctx) (*model.ParentCourseModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.ParentCourseModel
	if err := pc.DB.WithContext(c.UserContext()).First(&row, "parent_course_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Parent course not found")
		}
		return nil, err
	}
	return &row, nil
}

// save checks the name, derives a free slug and writes the row.
func (pc *ParentCourseController) save(c *fiber.Ctx, req *dto.ParentCourseRequest, row *model.ParentCourseModel, create bool) error {
	ctx := c.UserContext()
	scope := helper.ExcludeID("parent_course_id", row.ParentCourseID)

	taken, err := helper.IsTakenCI(ctx, pc.DB, "parent_courses", "parent_course_name", req.ParentCourseName, scope)
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "Parent course name already exists")
	}

	base := helper.Slugify(req.SlugSource(), 160)
	if create || base != row.ParentCourseSlug {
		slug, err := helper.EnsureUniqueSlugCI(ctx, pc.DB, "parent_courses", "parent_course_slug", base, scope, 160)
		if err != nil {
			return err
		}
		row.ParentCourseSlug = slug
	}
	req.Apply(row)

	db := pc.DB.WithContext(ctx)
	if create {
		err = db.Create(row).Error
	} else {
		err = db.Save(row).Error
	}
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Parent course name or slug already exists")
		}
		log.WithError(err).Error("[parent-courses] save failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save parent course")
	}
	return nil
}

func (pc *ParentCourseController) courseCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := pc.DB.WithContext(ctx).Table("courses").Where("course_parent_course_id = ?", id).Count(&n).Error
	return n, err
}
