package dto

import (
	"strings"

	"coursedesk_backend/internals/features/catalog/softwares/model"
)

type SoftwareRequest struct {
	SoftwareName        string `json:"software_name" validate:"required,max=120"`
	SoftwareDescription string `json:"software_description"`
	SoftwareImage       string `json:"software_image"`
}

func (r *SoftwareRequest) Normalize() {
	r.SoftwareName = strings.TrimSpace(r.SoftwareName)
	r.SoftwareDescription = strings.TrimSpace(r.SoftwareDescription)
	r.SoftwareImage = strings.TrimSpace(r.SoftwareImage)
}

func (r *SoftwareRequest) Apply(m *model.SoftwareModel) {
	m.SoftwareName = r.SoftwareName
	m.SoftwareDescription = r.SoftwareDescription
}
