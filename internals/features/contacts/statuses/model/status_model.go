package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Built-in statuses cannot be renamed or deleted.
const (
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

var SystemStatuses = []string{StatusPending, StatusCancelled}

type StatusModel struct {
	StatusID       uuid.UUID `gorm:"column:status_id;type:uuid;primaryKey" json:"status_id"`
	StatusName     string    `gorm:"column:status_name;size:80;not null" json:"status_name"`
	StatusIsSystem bool      `gorm:"column:status_is_system;not null" json:"status_is_system"`

	StatusCreatedAt time.Time `gorm:"column:status_created_at;autoCreateTime" json:"status_created_at"`
	StatusUpdatedAt time.Time `gorm:"column:status_updated_at;autoUpdateTime" json:"status_updated_at"`
}

func (StatusModel) TableName() string { return "statuses" }

func (m *StatusModel) BeforeCreate(tx *gorm.DB) error {
	if m.StatusID == uuid.Nil {
		m.StatusID = uuid.New()
	}
	return nil
}
