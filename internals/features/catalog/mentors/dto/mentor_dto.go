package dto

import (
	"strings"

	"coursedesk_backend/internals/features/catalog/mentors/model"
)

type MentorRequest struct {
	MentorName        string `json:"mentor_name" validate:"required,max=120"`
	MentorDegree      string `json:"mentor_degree" validate:"omitempty,max=150"`
	MentorDescription string `json:"mentor_description"`
	MentorImage       string `json:"mentor_image"`
}

func (r *MentorRequest) Normalize() {
	r.MentorName = strings.TrimSpace(r.MentorName)
	r.MentorDegree = strings.TrimSpace(r.MentorDegree)
	r.MentorDescription = strings.TrimSpace(r.MentorDescription)
	r.MentorImage = strings.TrimSpace(r.MentorImage)
}

func (r *MentorRequest) Apply(m *model.MentorModel) {
	m.MentorName = r.MentorName
	m.MentorDegree = r.MentorDegree
	m.MentorDescription = r.MentorDescription
}
