package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlacementModel struct {
	PlacementID     uuid.UUID  `gorm:"column:placement_id;type:uuid;primaryKey" json:"placement_id"`
	PlacementName   string     `gorm:"column:placement_name;size:150;not null" json:"placement_name"`
	PlacementImage  string     `gorm:"column:placement_image;type:text" json:"placement_image"`
	PlacementUserID *uuid.UUID `gorm:"column:placement_user_id;type:uuid" json:"placement_user_id,omitempty"`

	PlacementCreatedAt time.Time `gorm:"column:placement_created_at;autoCreateTime" json:"placement_created_at"`
	PlacementUpdatedAt time.Time `gorm:"column:placement_updated_at;autoUpdateTime" json:"placement_updated_at"`
}

func (PlacementModel) TableName() string { return "placements" }

func (m *PlacementModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlacementID == uuid.Nil {
		m.PlacementID = uuid.New()
	}
	return nil
}
