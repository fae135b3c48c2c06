package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactModel is an enquiry left on the public site.
type ContactModel struct {
	ContactID      uuid.UUID `gorm:"column:contact_id;type:uuid;primaryKey" json:"contact_id"`
	ContactName    string    `gorm:"column:contact_name;size:150;not null" json:"contact_name"`
	ContactPhone   string    `gorm:"column:contact_phone;size:40" json:"contact_phone"`
	ContactEmail   string    `gorm:"column:contact_email;size:255" json:"contact_email"`
	ContactSubject string    `gorm:"column:contact_subject;size:255" json:"contact_subject"`
	ContactMessage string    `gorm:"column:contact_message;type:text" json:"contact_message"`
	ContactCourse  string    `gorm:"column:contact_course;size:200" json:"contact_course"`

	ContactIsOnline bool `gorm:"column:contact_is_online;not null" json:"contact_is_online"`
	ContactIsClosed bool `gorm:"column:contact_is_contact_close;not null;index" json:"is_contact_close"`

	ContactCreatedAt time.Time `gorm:"column:contact_created_at;autoCreateTime;index" json:"contact_created_at"`
	ContactUpdatedAt time.Time `gorm:"column:contact_updated_at;autoUpdateTime" json:"contact_updated_at"`
}

func (ContactModel) TableName() string { return "contacts" }

func (m *ContactModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactID == uuid.Nil {
		m.ContactID = uuid.New()
	}
	return nil
}
