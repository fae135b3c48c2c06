package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	courseModel "coursedesk_backend/internals/features/catalog/courses/model"
	"coursedesk_backend/internals/features/catalog/demos/dto"
	"coursedesk_backend/internals/features/catalog/demos/model"
	helper "coursedesk_backend/internals/helpers"
)

type DemoController struct {
	DB *gorm.DB
}

func NewDemoController(db *gorm.DB) *DemoController {
	return &DemoController{DB: db}
}

const selectWithCourse = "demos.*, courses.course_name"

func (dc *DemoController) joined(c *fiber.Ctx) *gorm.DB {
	return dc.DB.WithContext(c.UserContext()).
		Model(&model.DemoModel{}).
		Joins("LEFT JOIN courses ON courses.course_id = demos.demo_course_id")
}

// GET /demos?course_id=&q= (q matches the course name)
func (dc *DemoController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	q := dc.joined(c)
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_id")
		}
		q = q.Where("demos.demo_course_id = ?", courseID)
	}
	if p.Q != "" {
		q = q.Where("LOWER(courses.course_name) LIKE ?", p.LikePattern())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.WithError(err).Error("[demos] count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count demos")
	}
	var rows []dto.DemoResponse
	if err := q.Select(selectWithCourse).Order("demos.demo_next_demo_start_date ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.WithError(err).Error("[demos] list failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve demos")
	}
	return helper.JsonList(c, "Demos fetched", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (dc *DemoController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var row dto.DemoResponse
	if err := dc.joined(c).Select(selectWithCourse).Where("demos.demo_id = ?", id).Take(&row).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Demo not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Demo fetched", row)
}

func (dc *DemoController) Create(c *fiber.Ctx) error {
	req, courseID, ok, err := dc.parse(c)
	if !ok {
		return err
	}

	row := model.DemoModel{DemoCourseID: courseID, DemoUserID: helper.CreatorID(c)}
	req.Apply(&row)
	if err := dc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.WithError(err).Error("[demos] create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create demo")
	}
	return helper.JsonCreated(c, "Demo created", row)
}

func (dc *DemoController) Update(c *fiber.Ctx) error {
	row, err := dc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req, courseID, ok, err := dc.parse(c)
	if !ok {
		return err
	}

	req.Apply(row)
	row.DemoCourseID = courseID
	if err := dc.DB.WithContext(c.UserContext()).Save(row).Error; err != nil {
		log.WithError(err).Error("[demos] update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update demo")
	}
	return helper.JsonUpdated(c, "Demo updated", row)
}

func (dc *DemoController) Delete(c *fiber.Ctx) error {
	row, err := dc.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := dc.DB.WithContext(c.UserContext()).Delete(&model.DemoModel{}, "demo_id = ?", row.DemoID).Error; err != nil {
		log.WithError(err).Error("[demos] delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete demo")
	}
	return helper.JsonDeleted(c, "Demo deleted", fiber.Map{"demo_id": row.DemoID})
}

func (dc *DemoController) find(c *fiber.Ctx) (*model.DemoModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var row model.DemoModel
	if err := dc.DB.WithContext(c.UserContext()).First(&row, "demo_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Demo not found")
		}
		return nil, err
	}
	return &row, nil
}

// parse validates the form and checks that the course exists. When ok is
// false the response has already been written.
func (dc *DemoController) parse(c *fiber.Ctx) (*dto.DemoRequest, uuid.UUID, bool, error) {
	var req dto.DemoRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, uuid.Nil, false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return nil, uuid.Nil, false, helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	courseID := uuid.MustParse(req.DemoCourseID)
	var n int64
	if err := dc.DB.WithContext(c.UserContext()).Model(&courseModel.CourseModel{}).
		Where("course_id = ?", courseID).Count(&n).Error; err != nil {
		return nil, uuid.Nil, false, helper.FromFiberError(c, err)
	}
	if n == 0 {
		return nil, uuid.Nil, false, helper.JsonValidationError(c,
			helper.FieldError("demo_course_id", "demo_course_id does not exist"))
	}
	return &req, courseID, true, nil
}
