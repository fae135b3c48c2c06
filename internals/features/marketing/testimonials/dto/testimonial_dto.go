package dto

import (
	"strings"

	"github.com/google/uuid"

	"coursedesk_backend/internals/features/marketing/testimonials/model"
)

type TestimonialRequest struct {
	TestimonialName        string   `json:"testimonial_name" validate:"required,max=150"`
	TestimonialDescription string   `json:"testimonial_description" validate:"required"`
	TestimonialImage       string   `json:"testimonial_image"`
	TestimonialCourseIDs   []string `json:"testimonial_course_ids" validate:"dive,uuid"`
	TestimonialShowForAll  bool     `json:"testimonial_show_for_all"`
}

// Normalize trims the form. A testimonial shown for all courses keeps no course ids.
func (r *TestimonialRequest) Normalize() {
	r.TestimonialName = strings.TrimSpace(r.TestimonialName)
	r.TestimonialDescription = strings.TrimSpace(r.TestimonialDescription)
	r.TestimonialImage = strings.TrimSpace(r.TestimonialImage)

	if r.TestimonialShowForAll {
		r.TestimonialCourseIDs = []string{}
		return
	}
	seen := map[string]struct{}{}
	ids := make([]string, 0, len(r.TestimonialCourseIDs))
	for _, id := range r.TestimonialCourseIDs {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	r.TestimonialCourseIDs = ids
}

// CourseIDs parses the validated ids.
func (r *TestimonialRequest) CourseIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.TestimonialCourseIDs))
	for _, s := range r.TestimonialCourseIDs {
		out = append(out, uuid.MustParse(s))
	}
	return out
}

func (r *TestimonialRequest) Apply(m *model.TestimonialModel) {
	m.TestimonialName = r.TestimonialName
	m.TestimonialDescription = r.TestimonialDescription
	m.TestimonialShowForAll = r.TestimonialShowForAll
	m.TestimonialCourseIDs = r.CourseIDs()
}
