package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DemoModel is a scheduled demo session for a course.
type DemoModel struct {
	DemoID                uuid.UUID                   `gorm:"column:demo_id;type:uuid;primaryKey" json:"demo_id"`
	DemoCourseID          uuid.UUID                   `gorm:"column:demo_course_id;type:uuid;not null;index" json:"demo_course_id"`
	DemoDuration          string                      `gorm:"column:demo_duration;size:50" json:"demo_duration"`
	DemoNextDemoStartDate string                      `gorm:"column:demo_next_demo_start_date;size:10" json:"demo_next_demo_start_date"`
	DemoMentors           datatypes.JSONSlice[string] `gorm:"column:demo_mentors" json:"demo_mentors"`

	DemoUserID *uuid.UUID `gorm:"column:demo_user_id;type:uuid" json:"demo_user_id,omitempty"`

	DemoCreatedAt time.Time `gorm:"column:demo_created_at;autoCreateTime" json:"demo_created_at"`
	DemoUpdatedAt time.Time `gorm:"column:demo_updated_at;autoUpdateTime" json:"demo_updated_at"`
}

func (DemoModel) TableName() string { return "demos" }

func (m *DemoModel) BeforeCreate(tx *gorm.DB) error {
	if m.DemoID == uuid.Nil {
		m.DemoID = uuid.New()
	}
	return nil
}
