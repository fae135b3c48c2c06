package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseModule struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CourseIsFor struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type SectionPoint struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CourseSection is one curriculum block with its points.
type CourseSection struct {
	ID          int            `json:"id"`
	SectionName string         `json:"section_name"`
	Points      []SectionPoint `json:"points"`
}

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	CourseName        string    `gorm:"column:course_name;size:200;not null" json:"course_name"`
	CourseSlug        string    `gorm:"column:course_slug;size:220;not null;uniqueIndex" json:"course_slug"`
	CourseDescription string    `gorm:"column:course_description;type:text;not null" json:"course_description"`
	CourseThumbnail   string    `gorm:"column:course_thumbnail;type:text" json:"course_thumbnail"`

	CourseDuration           string `gorm:"column:course_duration;size:20;not null" json:"course_duration"`
	CourseNextBatchStartDate string `gorm:"column:course_next_batch_start_date;size:10" json:"course_next_batch_start_date"`
	CourseDifficulty         string `gorm:"column:course_difficulty;size:20;not null" json:"course_difficulty"`
	CourseMode               string `gorm:"column:course_mode;size:20;not null" json:"course_mode"`
	CourseAssignments        string `gorm:"column:course_assignments;size:50" json:"course_assignments"`
	CourseHiredBy            string `gorm:"column:course_hired_by;size:50" json:"course_hired_by"`
	CourseAvgCTC             string `gorm:"column:course_avg_ctc;size:50" json:"course_avg_ctc"`

	CourseThisCourseIsFor datatypes.JSONSlice[CourseIsFor]   `gorm:"column:course_this_course_is_for" json:"course_this_course_is_for"`
	CourseSoftwares       datatypes.JSONSlice[string]        `gorm:"column:course_softwares" json:"course_softwares"`
	CourseMentors         datatypes.JSONSlice[string]        `gorm:"column:course_mentors" json:"course_mentors"`
	CourseModules         datatypes.JSONSlice[CourseModule]  `gorm:"column:course_modules" json:"course_modules"`
	CourseSections        datatypes.JSONSlice[CourseSection] `gorm:"column:course_sections" json:"course_sections"`

	CourseIsDemoAvailable bool `gorm:"column:course_is_demo_available;not null" json:"course_is_demo_available"`
	CourseIsClubCourse    bool `gorm:"column:course_is_club_course;not null" json:"course_is_club_course"`
	CourseEnabled         bool `gorm:"column:course_enabled;not null;index" json:"course_enabled"`

	CourseParentCourseID uuid.UUID  `gorm:"column:course_parent_course_id;type:uuid;not null;index" json:"course_parent_course_id"`
	CourseUserID         *uuid.UUID `gorm:"column:course_user_id;type:uuid" json:"course_user_id,omitempty"`

	CourseCreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
