package dto

import (
	"strings"

	"coursedesk_backend/internals/features/contacts/contacts/model"
	followupModel "coursedesk_backend/internals/features/contacts/followups/model"
	"coursedesk_backend/internals/notifications"
)

// ContactRequest is the enquiry form of the public site.
type ContactRequest struct {
	ContactName     string `json:"contact_name" validate:"required,max=150"`
	ContactPhone    string `json:"contact_phone" validate:"omitempty,max=40"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactSubject  string `json:"contact_subject" validate:"omitempty,max=255"`
	ContactMessage  string `json:"contact_message"`
	ContactCourse   string `json:"contact_course" validate:"omitempty,max=200"`
	ContactIsOnline bool   `json:"contact_is_online"`
}

func (r *ContactRequest) Normalize() {
	r.ContactName = strings.TrimSpace(r.ContactName)
	r.ContactPhone = strings.TrimSpace(r.ContactPhone)
	r.ContactEmail = strings.ToLower(strings.TrimSpace(r.ContactEmail))
	r.ContactSubject = strings.TrimSpace(r.ContactSubject)
	r.ContactMessage = strings.TrimSpace(r.ContactMessage)
	r.ContactCourse = strings.TrimSpace(r.ContactCourse)
}

// Reachable reports whether staff have a way to answer.
func (r *ContactRequest) Reachable() bool {
	return r.ContactPhone != "" || r.ContactEmail != ""
}

func (r *ContactRequest) ToModel() model.ContactModel {
	return model.ContactModel{
		ContactName:     r.ContactName,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
		ContactSubject:  r.ContactSubject,
		ContactMessage:  r.ContactMessage,
		ContactCourse:   r.ContactCourse,
		ContactIsOnline: r.ContactIsOnline,
	}
}

func ToEnquiry(m *model.ContactModel) notifications.Enquiry {
	return notifications.Enquiry{
		Name:     m.ContactName,
		Email:    m.ContactEmail,
		Phone:    m.ContactPhone,
		Subject:  m.ContactSubject,
		Message:  m.ContactMessage,
		Course:   m.ContactCourse,
		IsOnline: m.ContactIsOnline,
	}
}

type CloseRequest struct {
	IsContactClose *bool `json:"is_contact_close" validate:"required"`
}

type ContactDetail struct {
	model.ContactModel
	Followups []followupModel.FollowupModel `json:"followups"`
}
