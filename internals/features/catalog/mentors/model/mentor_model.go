package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MentorModel struct {
	MentorID          uuid.UUID `gorm:"column:mentor_id;type:uuid;primaryKey" json:"mentor_id"`
	MentorName        string    `gorm:"column:mentor_name;size:120;not null" json:"mentor_name"`
	MentorDegree      string    `gorm:"column:mentor_degree;size:150" json:"mentor_degree"`
	MentorDescription string    `gorm:"column:mentor_description;type:text" json:"mentor_description"`
	MentorImage       string    `gorm:"column:mentor_image;type:text" json:"mentor_image"`

	MentorUserID *uuid.UUID `gorm:"column:mentor_user_id;type:uuid" json:"mentor_user_id,omitempty"`

	MentorCreatedAt time.Time `gorm:"column:mentor_created_at;autoCreateTime" json:"mentor_created_at"`
	MentorUpdatedAt time.Time `gorm:"column:mentor_updated_at;autoUpdateTime" json:"mentor_updated_at"`
}

func (MentorModel) TableName() string { return "mentors" }

func (m *MentorModel) BeforeCreate(tx *gorm.DB) error {
	if m.MentorID == uuid.Nil {
		m.MentorID = uuid.New()
	}
	return nil
}
