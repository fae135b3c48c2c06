package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentCourseModel struct {
	ParentCourseID          uuid.UUID `gorm:"column:parent_course_id;type:uuid;primaryKey" json:"parent_course_id"`
	ParentCourseName        string    `gorm:"column:parent_course_name;size:150;not null" json:"parent_course_name"`
	ParentCourseSlug        string    `gorm:"column:parent_course_slug;size:160;not null;uniqueIndex" json:"parent_course_slug"`
	ParentCourseDescription string    `gorm:"column:parent_course_description;type:text" json:"parent_course_description"`

	ParentCourseUserID *uuid.UUID `gorm:"column:parent_course_user_id;type:uuid" json:"parent_course_user_id,omitempty"`

	ParentCourseCreatedAt time.Time `gorm:"column:parent_course_created_at;autoCreateTime" json:"parent_course_created_at"`
	ParentCourseUpdatedAt time.Time `gorm:"column:parent_course_updated_at;autoUpdateTime" json:"parent_course_updated_at"`
}

func (ParentCourseModel) TableName() string { return "parent_courses" }

func (m *ParentCourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParentCourseID == uuid.Nil {
		m.ParentCourseID = uuid.New()
	}
	return nil
}
