package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeoModel holds the meta tags of one public page, keyed by page name.
type SeoModel struct {
	SeoID              uuid.UUID `gorm:"column:seo_id;type:uuid;primaryKey" json:"seo_id"`
	SeoPageName        string    `gorm:"column:seo_page_name;size:150;not null;uniqueIndex" json:"seo_page_name"`
	SeoTitle           string    `gorm:"column:seo_title;size:255;not null" json:"seo_title"`
	SeoDescription     string    `gorm:"column:seo_description;type:text" json:"seo_description"`
	SeoURL             string    `gorm:"column:seo_url;type:text" json:"seo_url"`
	SeoBlogOrServiceID *string   `gorm:"column:seo_blog_or_service_id;size:100" json:"seo_blog_or_service_id,omitempty"`

	SeoCreatedAt time.Time `gorm:"column:seo_created_at;autoCreateTime" json:"seo_created_at"`
	SeoUpdatedAt time.Time `gorm:"column:seo_updated_at;autoUpdateTime" json:"seo_updated_at"`
}

func (SeoModel) TableName() string { return "seos" }

func (m *SeoModel) BeforeCreate(tx *gorm.DB) error {
	if m.SeoID == uuid.Nil {
		m.SeoID = uuid.New()
	}
	return nil
}
