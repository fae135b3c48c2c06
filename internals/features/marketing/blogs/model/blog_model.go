package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogModel struct {
	BlogID          uuid.UUID  `gorm:"column:blog_id;type:uuid;primaryKey" json:"blog_id"`
	BlogTitle       string     `gorm:"column:blog_title;size:255;not null" json:"blog_title"`
	BlogSlug        string     `gorm:"column:blog_slug;size:160;not null;uniqueIndex" json:"blog_slug"`
	BlogDescription string     `gorm:"column:blog_description;type:text;not null" json:"blog_description"`
	BlogImage       string     `gorm:"column:blog_image;type:text" json:"blog_image"`
	BlogUserID      *uuid.UUID `gorm:"column:blog_user_id;type:uuid" json:"blog_user_id,omitempty"`

	BlogCreatedAt time.Time `gorm:"column:blog_created_at;autoCreateTime;index" json:"blog_created_at"`
	BlogUpdatedAt time.Time `gorm:"column:blog_updated_at;autoUpdateTime" json:"blog_updated_at"`
}

func (BlogModel) TableName() string { return "blogs" }

func (m *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if m.BlogID == uuid.Nil {
		m.BlogID = uuid.New()
	}
	return nil
}
