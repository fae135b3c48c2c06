package route

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	demoModel "coursedesk_backend/internals/features/catalog/demos/model"
	parentModel "coursedesk_backend/internals/features/catalog/parent_courses/model"
	testimonialModel "coursedesk_backend/internals/features/marketing/testimonials/model"
	"coursedesk_backend/internals/testutil"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB, string, string) {
	app, api, db, token := testutil.AdminAPI(t)
	mediaSvc := testutil.Media()
	CourseAdminRoutes(api, db, mediaSvc)
	CoursePublicRoutes(app.Group("/api/public"), db, mediaSvc)

	parent := parentModel.ParentCourseModel{ParentCourseName: "Development", ParentCourseSlug: "development"}
	require.NoError(t, db.Create(&parent).Error)
	return app, db, token, parent.ParentCourseID.String()
}

func courseBody(t *testing.T, parentID string) map[string]any {
	return map[string]any{
		"course_name":                  " Full Stack Web ",
		"course_description":           "Build web apps",
		"course_thumbnail":             testutil.PNGDataURL(t, 10, 10),
		"course_duration":              "6 Months",
		"course_next_batch_start_date": "2026-11-02",
		"course_difficulty":            "Beginner",
		"course_mode":                  "Both",
		"course_avg_ctc":               "6 LPA",
		"course_this_course_is_for": []map[string]any{
			{"id": 4, "description": "Graduates"},
			{"id": 5, "description": "  "},
		},
		"course_softwares": []string{"VS Code", "vs code", " Git "},
		"course_mentors":   []string{"Asha", ""},
		"course_modules": []map[string]any{
			{"id": 1, "title": "HTML", "description": "Markup"},
			{"id": 2, "title": "CSS", "description": ""},
		},
		"course_sections": []map[string]any{
			{"id": 1, "section_name": "Week 1", "points": []map[string]any{{"id": 1, "title": "Intro", "description": "Setup"}}},
			{"id": 2, "section_name": "Week 2", "points": []map[string]any{{"id": 1, "title": "DOM", "description": "Events"}}},
			{"id": 3, "section_name": "Week 3", "points": []map[string]any{{"id": 1, "title": "APIs", "description": "Fetch"}}},
			{"id": 4, "section_name": "Draft", "points": []map[string]any{{"id": 1, "title": "", "description": ""}}},
		},
		"course_parent_course_id": parentID,
	}
}

func TestCreateCourseNormalizesBuilder(t *testing.T) {
	app, _, token, parentID := setup(t)

	res := testutil.Do(t, app, "POST", "/api/a/courses", courseBody(t, parentID), token)
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	data := res.DataMap()

	assert.Equal(t, "Full Stack Web", data["course_name"])
	assert.Equal(t, "full-stack-web", data["course_slug"])
	assert.Equal(t, true, data["course_enabled"])
	assert.True(t, strings.HasPrefix(data["course_thumbnail"].(string), "data:image/webp;base64,"))
	assert.Equal(t, []any{"VS Code", "Git"}, data["course_softwares"])
	assert.Equal(t, []any{"Asha"}, data["course_mentors"])

	isFor := data["course_this_course_is_for"].([]any)
	require.Len(t, isFor, 1)
	assert.EqualValues(t, 1, isFor[0].(map[string]any)["id"])

	assert.Len(t, data["course_modules"], 1)
	sections := data["course_sections"].([]any)
	require.Len(t, sections, 3)
	assert.EqualValues(t, 3, sections[2].(map[string]any)["id"])
}

func TestCreateCourseValidation(t *testing.T) {
	app, _, token, parentID := setup(t)

	body := courseBody(t, parentID)
	body["course_mentors"] = []string{" ", ""}
	body["course_duration"] = "7 Months"
	res := testutil.Do(t, app, "POST", "/api/a/courses", body, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
	errs := res.Body["errors"].(map[string]any)
	assert.Contains(t, errs, "course_mentors")
	assert.Contains(t, errs, "course_duration")

	body = courseBody(t, parentID)
	body["course_modules"] = []map[string]any{{"title": "only title"}}
	res = testutil.Do(t, app, "POST", "/api/a/courses", body, token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.Status)

	body = courseBody(t, "3f1b6a8e-2c4d-4e5f-8a9b-0c1d2e3f4a5b")
	res = testutil.Do(t, app, "POST", "/api/a/courses", body, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
	assert.Contains(t, res.Body["errors"], "course_parent_course_id")

	body = courseBody(t, parentID)
	body["course_thumbnail"] = ""
	res = testutil.Do(t, app, "POST", "/api/a/courses", body, token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.Status)

	body = courseBody(t, parentID)
	body["course_next_batch_start_date"] = "02/11/2026"
	res = testutil.Do(t, app, "POST", "/api/a/courses", body, token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
}

func TestReorderSections(t *testing.T) {
	app, _, token, parentID := setup(t)

	res := testutil.Do(t, app, "POST", "/api/a/courses", courseBody(t, parentID), token)
	require.Equal(t, fiber.StatusCreated, res.Status)
	id := testutil.ID(res.DataMap(), "course_id")

	res = testutil.Do(t, app, "POST", "/api/a/courses/"+id+"/sections/reorder", map[string]int{"from": 0, "to": 2}, token)
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))

	res = testutil.Do(t, app, "GET", "/api/a/courses/"+id, nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	sections := res.DataMap()["course_sections"].([]any)
	var names []string
	for i, s := range sections {
		m := s.(map[string]any)
		names = append(names, m["section_name"].(string))
		assert.EqualValues(t, i+1, m["id"])
	}
	assert.Equal(t, []string{"Week 2", "Week 3", "Week 1"}, names)

	res = testutil.Do(t, app, "POST", "/api/a/courses/"+id+"/sections/reorder", map[string]int{"from": 0, "to": 3}, token)
	assert.Equal(t, fiber.StatusBadRequest, res.Status)
}

func TestUpdateKeepsThumbnailAndPublicVisibility(t *testing.T) {
	app, _, token, parentID := setup(t)

	res := testutil.Do(t, app, "POST", "/api/a/courses", courseBody(t, parentID), token)
	require.Equal(t, fiber.StatusCreated, res.Status)
	id := testutil.ID(res.DataMap(), "course_id")
	thumb := res.DataMap()["course_thumbnail"]

	body := courseBody(t, parentID)
	body["course_thumbnail"] = ""
	body["course_name"] = "Full Stack Web Pro"
	res = testutil.Do(t, app, "PUT", "/api/a/courses/"+id, body, token)
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	assert.Equal(t, thumb, res.DataMap()["course_thumbnail"])
	assert.Equal(t, "full-stack-web-pro", res.DataMap()["course_slug"])

	res = testutil.Do(t, app, "GET", "/api/public/courses/slug/full-stack-web-pro", nil, "")
	assert.Equal(t, fiber.StatusOK, res.Status)

	res = testutil.Do(t, app, "PATCH", "/api/a/courses/"+id+"/enabled", map[string]bool{"course_enabled": false}, token)
	require.Equal(t, fiber.StatusOK, res.Status)

	res = testutil.Do(t, app, "GET", "/api/public/courses", nil, "")
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Empty(t, res.DataList())

	res = testutil.Do(t, app, "GET", "/api/public/courses/slug/full-stack-web-pro", nil, "")
	assert.Equal(t, fiber.StatusNotFound, res.Status)

	res = testutil.Do(t, app, "GET", "/api/a/courses?enabled=false", nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Len(t, res.DataList(), 1)
}

func TestDeleteCourseRemovesDemos(t *testing.T) {
	app, db, token, parentID := setup(t)

	res := testutil.Do(t, app, "POST", "/api/a/courses", courseBody(t, parentID), token)
	require.Equal(t, fiber.StatusCreated, res.Status)
	id := testutil.ID(res.DataMap(), "course_id")

	require.NoError(t, db.Exec(
		"INSERT INTO demos (demo_id, demo_course_id, demo_duration) VALUES (?, ?, ?)",
		"7d0c2d1e-5b8a-4d7e-9a53-7a1f0f4d2b11", id, "1 hour").Error)

	res = testutil.Do(t, app, "DELETE", "/api/a/courses/"+id, nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)

	var n int64
	require.NoError(t, db.Model(&demoModel.DemoModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDeleteCoursePrunesTestimonials(t *testing.T) {
	app, db, token, parentID := setup(t)

	res := testutil.Do(t, app, "POST", "/api/a/courses", courseBody(t, parentID), token)
	require.Equal(t, fiber.StatusCreated, res.Status)
	deleted := uuid.MustParse(testutil.ID(res.DataMap(), "course_id"))

	body := courseBody(t, parentID)
	body["course_name"] = "Data Science"
	res = testutil.Do(t, app, "POST", "/api/a/courses", body, token)
	require.Equal(t, fiber.StatusCreated, res.Status)
	kept := uuid.MustParse(testutil.ID(res.DataMap(), "course_id"))

	both := testimonialModel.TestimonialModel{
		TestimonialName:        "Lena",
		TestimonialDescription: "Great mentors",
		TestimonialCourseIDs:   datatypes.JSONSlice[uuid.UUID]{deleted, kept},
	}
	other := testimonialModel.TestimonialModel{
		TestimonialName:        "Omar",
		TestimonialDescription: "Loved it",
		TestimonialCourseIDs:   datatypes.JSONSlice[uuid.UUID]{kept},
	}
	require.NoError(t, db.Create(&both).Error)
	require.NoError(t, db.Create(&other).Error)

	res = testutil.Do(t, app, "DELETE", "/api/a/courses/"+deleted.String(), nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)

	var rows []testimonialModel.TestimonialModel
	require.NoError(t, db.Order("testimonial_name").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, []uuid.UUID{kept}, []uuid.UUID(rows[0].TestimonialCourseIDs))
	assert.Equal(t, []uuid.UUID{kept}, []uuid.UUID(rows[1].TestimonialCourseIDs))
}
