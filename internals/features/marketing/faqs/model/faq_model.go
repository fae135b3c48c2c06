package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FAQModel: ServiceIDs are opaque identifiers of the public site's service pages.
type FAQModel struct {
	FAQID         uuid.UUID                   `gorm:"column:faq_id;type:uuid;primaryKey" json:"faq_id"`
	FAQQuestion   string                      `gorm:"column:faq_question;type:text;not null" json:"faq_question"`
	FAQAnswer     string                      `gorm:"column:faq_answer;type:text;not null" json:"faq_answer"`
	FAQServiceIDs datatypes.JSONSlice[string] `gorm:"column:faq_service_ids" json:"faq_service_ids"`
	FAQShowForAll bool                        `gorm:"column:faq_show_for_all;not null" json:"faq_show_for_all"`
	FAQUserID     *uuid.UUID                  `gorm:"column:faq_user_id;type:uuid" json:"faq_user_id,omitempty"`

	FAQCreatedAt time.Time `gorm:"column:faq_created_at;autoCreateTime" json:"faq_created_at"`
	FAQUpdatedAt time.Time `gorm:"column:faq_updated_at;autoUpdateTime" json:"faq_updated_at"`
}

func (FAQModel) TableName() string { return "faqs" }

func (m *FAQModel) BeforeCreate(tx *gorm.DB) error {
	if m.FAQID == uuid.Nil {
		m.FAQID = uuid.New()
	}
	return nil
}

func (m *FAQModel) AppliesTo(serviceID string) bool {
	if m.FAQShowForAll {
		return true
	}
	for _, id := range m.FAQServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
