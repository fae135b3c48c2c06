package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowupModel struct {
	FollowupID        uuid.UUID  `gorm:"column:followup_id;type:uuid;primaryKey" json:"followup_id"`
	FollowupContactID uuid.UUID  `gorm:"column:followup_contact_id;type:uuid;not null;index" json:"followup_contact_id"`
	FollowupStatus    string     `gorm:"column:followup_status;size:80;not null;index" json:"followup_status"`
	FollowupMessage   string     `gorm:"column:followup_message;type:text;not null" json:"followup_message"`
	FollowupUserID    *uuid.UUID `gorm:"column:followup_user_id;type:uuid" json:"followup_user_id,omitempty"`

	FollowupCreatedAt time.Time `gorm:"column:followup_created_at;autoCreateTime" json:"followup_created_at"`
	FollowupUpdatedAt time.Time `gorm:"column:followup_updated_at;autoUpdateTime;index" json:"followup_updated_at"`
}

func (FollowupModel) TableName() string { return "followups" }

func (m *FollowupModel) BeforeCreate(tx *gorm.DB) error {
	if m.FollowupID == uuid.Nil {
		m.FollowupID = uuid.New()
	}
	return nil
}
