package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SoftwareModel struct {
	SoftwareID          uuid.UUID `gorm:"column:software_id;type:uuid;primaryKey" json:"software_id"`
	SoftwareName        string    `gorm:"column:software_name;size:120;not null" json:"software_name"`
	SoftwareDescription string    `gorm:"column:software_description;type:text" json:"software_description"`
	SoftwareImage       string    `gorm:"column:software_image;type:text" json:"software_image"`

	SoftwareUserID *uuid.UUID `gorm:"column:software_user_id;type:uuid" json:"software_user_id,omitempty"`

	SoftwareCreatedAt time.Time `gorm:"column:software_created_at;autoCreateTime" json:"software_created_at"`
	SoftwareUpdatedAt time.Time `gorm:"column:software_updated_at;autoUpdateTime" json:"software_updated_at"`
}

func (SoftwareModel) TableName() string { return "softwares" }

func (m *SoftwareModel) BeforeCreate(tx *gorm.DB) error {
	if m.SoftwareID == uuid.Nil {
		m.SoftwareID = uuid.New()
	}
	return nil
}
