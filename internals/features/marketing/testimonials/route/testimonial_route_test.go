package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	courseModel "coursedesk_backend/internals/features/catalog/courses/model"
	"coursedesk_backend/internals/testutil"
)

func seedCourse(t *testing.T, db *gorm.DB, name string) courseModel.CourseModel {
	t.Helper()
	course := courseModel.CourseModel{
		CourseName:           name,
		CourseSlug:           uuid.NewString(),
		CourseDescription:    "d",
		CourseDuration:       "6 Months",
		CourseDifficulty:     "Beginner",
		CourseMode:           "Online",
		CourseParentCourseID: uuid.New(),
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestTestimonialCourseSelection(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	TestimonialAdminRoutes(api, db, testutil.Media())

	res := testutil.Do(t, app, "POST", "/api/a/testimonials", map[string]any{
		"testimonial_name":        "Priya",
		"testimonial_description": "Great course",
	}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
	assert.Contains(t, res.Body["errors"], "testimonial_course_ids")

	res = testutil.Do(t, app, "POST", "/api/a/testimonials", map[string]any{
		"testimonial_name":        "Priya",
		"testimonial_description": "Great course",
		"testimonial_course_ids":  []string{uuid.NewString()},
	}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)

	course := seedCourse(t, db, "Data Science")
	res = testutil.Do(t, app, "POST", "/api/a/testimonials", map[string]any{
		"testimonial_name":         "Priya",
		"testimonial_description":  "Great course",
		"testimonial_course_ids":   []string{course.CourseID.String()},
		"testimonial_show_for_all": true,
	}, token)
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	assert.Empty(t, res.DataMap()["testimonial_course_ids"])
}

func TestTestimonialPublicFilter(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	TestimonialAdminRoutes(api, db, testutil.Media())
	TestimonialPublicRoutes(app.Group("/api/public"), db, testutil.Media())

	ds := seedCourse(t, db, "Data Science")
	web := seedCourse(t, db, "Web Development")

	create := func(name string, ids []string, all bool) string {
		res := testutil.Do(t, app, "POST", "/api/a/testimonials", map[string]any{
			"testimonial_name":         name,
			"testimonial_description":  "text",
			"testimonial_image":        testutil.PNGDataURL(t, 4, 4),
			"testimonial_course_ids":   ids,
			"testimonial_show_for_all": all,
		}, token)
		require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
		return testutil.ID(res.DataMap(), "testimonial_id")
	}
	create("A", []string{ds.CourseID.String()}, false)
	create("B", []string{web.CourseID.String()}, false)
	idC := create("C", nil, true)

	res := testutil.Do(t, app, "GET", "/api/public/testimonials?course_id="+ds.CourseID.String(), nil, "")
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	names := map[string]bool{}
	for _, it := range res.DataList() {
		names[it.(map[string]any)["testimonial_name"].(string)] = true
	}
	assert.Equal(t, map[string]bool{"A": true, "C": true}, names)

	res = testutil.Do(t, app, "GET", "/api/public/testimonials?course_id="+ds.CourseID.String()+"&per_page=1&page=2", nil, "")
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Len(t, res.DataList(), 1)

	res = testutil.Do(t, app, "GET", "/api/public/testimonials?course_id=nope", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, res.Status)

	res = testutil.Do(t, app, "GET", "/api/public/testimonials", nil, "")
	assert.Len(t, res.DataList(), 3)

	res = testutil.Do(t, app, "PUT", "/api/a/testimonials/"+idC, map[string]any{
		"testimonial_name":        "C",
		"testimonial_description": "text",
		"testimonial_course_ids":  []string{web.CourseID.String()},
	}, token)
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	assert.NotEmpty(t, res.DataMap()["testimonial_image"])

	res = testutil.Do(t, app, "GET", "/api/public/testimonials?course_id="+ds.CourseID.String(), nil, "")
	assert.Len(t, res.DataList(), 1)

	res = testutil.Do(t, app, "DELETE", "/api/a/testimonials/"+idC, nil, token)
	assert.Equal(t, fiber.StatusOK, res.Status)
}
