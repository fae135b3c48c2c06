package dto

import (
	"strings"

	"coursedesk_backend/internals/features/marketing/blogs/model"
)

type BlogRequest struct {
	BlogTitle       string `json:"blog_title" validate:"required,max=255"`
	BlogSlug        string `json:"blog_slug" validate:"omitempty,max=160"`
	BlogDescription string `json:"blog_description" validate:"required"`
	BlogImage       string `json:"blog_image"`
}

func (r *BlogRequest) Normalize() {
	r.BlogTitle = strings.TrimSpace(r.BlogTitle)
	r.BlogSlug = strings.TrimSpace(r.BlogSlug)
	r.BlogDescription = strings.TrimSpace(r.BlogDescription)
	r.BlogImage = strings.TrimSpace(r.BlogImage)
}

func (r *BlogRequest) SlugSource() string {
	if r.BlogSlug != "" {
		return r.BlogSlug
	}
	return r.BlogTitle
}

func (r *BlogRequest) Apply(m *model.BlogModel) {
	m.BlogTitle = r.BlogTitle
	m.BlogDescription = r.BlogDescription
}
