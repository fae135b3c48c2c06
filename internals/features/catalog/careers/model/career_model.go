package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerModel struct {
	CareerID   uuid.UUID `gorm:"column:career_id;type:uuid;primaryKey" json:"career_id"`
	CareerName string    `gorm:"column:career_name;size:150;not null" json:"career_name"`

	CareerUserID *uuid.UUID `gorm:"column:career_user_id;type:uuid" json:"career_user_id,omitempty"`

	CareerCreatedAt time.Time `gorm:"column:career_created_at;autoCreateTime" json:"career_created_at"`
	CareerUpdatedAt time.Time `gorm:"column:career_updated_at;autoUpdateTime" json:"career_updated_at"`
}

func (CareerModel) TableName() string { return "careers" }

func (m *CareerModel) BeforeCreate(tx *gorm.DB) error {
	if m.CareerID == uuid.Nil {
		m.CareerID = uuid.New()
	}
	return nil
}
