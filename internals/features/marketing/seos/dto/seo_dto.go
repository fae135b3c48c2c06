package dto

import (
	"strings"

	"coursedesk_backend/internals/features/marketing/seos/model"
)

// SeoRequest is the upsert form; SeoPageName is the key.
type SeoRequest struct {
	SeoPageName        string  `json:"seo_page_name" validate:"required,max=150"`
	SeoTitle           string  `json:"seo_title" validate:"required,max=255"`
	SeoDescription     string  `json:"seo_description"`
	SeoURL             string  `json:"seo_url" validate:"omitempty,max=2048"`
	SeoBlogOrServiceID *string `json:"seo_blog_or_service_id" validate:"omitempty,max=100"`
}

func (r *SeoRequest) Normalize() {
	r.SeoPageName = NormalizePageName(r.SeoPageName)
	r.SeoTitle = strings.TrimSpace(r.SeoTitle)
	r.SeoDescription = strings.TrimSpace(r.SeoDescription)
	r.SeoURL = strings.TrimSpace(r.SeoURL)
	if r.SeoBlogOrServiceID != nil {
		v := strings.TrimSpace(*r.SeoBlogOrServiceID)
		if v == "" {
			r.SeoBlogOrServiceID = nil
		} else {
			r.SeoBlogOrServiceID = &v
		}
	}
}

// NormalizePageName makes page names case-insensitive.
func NormalizePageName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (r *SeoRequest) ToModel() model.SeoModel {
	return model.SeoModel{
		SeoPageName:        r.SeoPageName,
		SeoTitle:           r.SeoTitle,
		SeoDescription:     r.SeoDescription,
		SeoURL:             r.SeoURL,
		SeoBlogOrServiceID: r.SeoBlogOrServiceID,
	}
}
