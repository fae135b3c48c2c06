package dto

import (
	"strings"

	"coursedesk_backend/internals/features/catalog/parent_courses/model"
)

type ParentCourseRequest struct {
	ParentCourseName        string `json:"parent_course_name" validate:"required,max=150"`
	ParentCourseSlug        string `json:"parent_course_slug" validate:"omitempty,max=160"`
	ParentCourseDescription string `json:"parent_course_description"`
}

func (r *ParentCourseRequest) Normalize() {
	r.ParentCourseName = strings.TrimSpace(r.ParentCourseName)
	r.ParentCourseSlug = strings.TrimSpace(r.ParentCourseSlug)
	r.ParentCourseDescription = strings.TrimSpace(r.ParentCourseDescription)
}

// SlugSource is the text the slug is derived from.
func (r *ParentCourseRequest) SlugSource() string {
	if r.ParentCourseSlug != "" {
		return r.ParentCourseSlug
	}
	return r.ParentCourseName
}

func (r *ParentCourseRequest) Apply(m *model.ParentCourseModel) {
	m.ParentCourseName = r.ParentCourseName
	m.ParentCourseDescription = r.ParentCourseDescription
}

type ParentCourseResponse struct {
	model.ParentCourseModel
	CourseCount int64 `json:"course_count"`
}
