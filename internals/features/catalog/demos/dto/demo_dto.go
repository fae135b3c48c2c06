package dto

import (
	"strings"

	courseDto "coursedesk_backend/internals/features/catalog/courses/dto"
	"coursedesk_backend/internals/features/catalog/demos/model"
)

type DemoRequest struct {
	DemoCourseID          string   `json:"demo_course_id" validate:"required,uuid"`
	DemoDuration          string   `json:"demo_duration" validate:"omitempty,max=50"`
	DemoNextDemoStartDate string   `json:"demo_next_demo_start_date" validate:"omitempty,datetime=2006-01-02"`
	DemoMentors           []string `json:"demo_mentors"`
}

func (r *DemoRequest) Normalize() {
	r.DemoCourseID = strings.TrimSpace(r.DemoCourseID)
	r.DemoDuration = strings.TrimSpace(r.DemoDuration)
	r.DemoNextDemoStartDate = strings.TrimSpace(r.DemoNextDemoStartDate)
	r.DemoMentors = courseDto.UniqueNames(r.DemoMentors)
}

func (r *DemoRequest) Apply(m *model.DemoModel) {
	m.DemoDuration = r.DemoDuration
	m.DemoNextDemoStartDate = r.DemoNextDemoStartDate
	m.DemoMentors = r.DemoMentors
}

// DemoResponse carries the course name for the demo table.
type DemoResponse struct {
	model.DemoModel
	CourseName string `gorm:"column:course_name" json:"course_name"`
}
