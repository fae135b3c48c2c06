package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestimonialModel is shown on the pages of its courses, or everywhere when ShowForAll.
type TestimonialModel struct {
	TestimonialID          uuid.UUID                      `gorm:"column:testimonial_id;type:uuid;primaryKey" json:"testimonial_id"`
	TestimonialName        string                         `gorm:"column:testimonial_name;size:150;not null" json:"testimonial_name"`
	TestimonialDescription string                         `gorm:"column:testimonial_description;type:text;not null" json:"testimonial_description"`
	TestimonialImage       string                         `gorm:"column:testimonial_image;type:text" json:"testimonial_image"`
	TestimonialCourseIDs   datatypes.JSONSlice[uuid.UUID] `gorm:"column:testimonial_course_ids" json:"testimonial_course_ids"`
	TestimonialShowForAll  bool                           `gorm:"column:testimonial_show_for_all;not null" json:"testimonial_show_for_all"`
	TestimonialUserID      *uuid.UUID                     `gorm:"column:testimonial_user_id;type:uuid" json:"testimonial_user_id,omitempty"`

	TestimonialCreatedAt time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"testimonial_created_at"`
	TestimonialUpdatedAt time.Time `gorm:"column:testimonial_updated_at;autoUpdateTime" json:"testimonial_updated_at"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestimonialID == uuid.Nil {
		m.TestimonialID = uuid.New()
	}
	return nil
}

// AppliesTo reports whether the testimonial belongs on the given course page.
func (m *TestimonialModel) AppliesTo(courseID uuid.UUID) bool {
	if m.TestimonialShowForAll {
		return true
	}
	for _, id := range m.TestimonialCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
