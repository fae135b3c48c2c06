package dto

import (
	"strings"

	"coursedesk_backend/internals/features/marketing/faqs/model"
)

type FAQRequest struct {
	FAQQuestion   string   `json:"faq_question" validate:"required"`
	FAQAnswer     string   `json:"faq_answer" validate:"required"`
	FAQServiceIDs []string `json:"faq_service_ids" validate:"dive,max=100"`
	FAQShowForAll bool     `json:"faq_show_for_all"`
}

// Normalize trims and dedupes service ids. Ids are kept verbatim otherwise.
func (r *FAQRequest) Normalize() {
	r.FAQQuestion = strings.TrimSpace(r.FAQQuestion)
	r.FAQAnswer = strings.TrimSpace(r.FAQAnswer)

	if r.FAQShowForAll {
		r.FAQServiceIDs = []string{}
		return
	}
	seen := map[string]struct{}{}
	ids := make([]string, 0, len(r.FAQServiceIDs))
	for _, id := range r.FAQServiceIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	r.FAQServiceIDs = ids
}

func (r *FAQRequest) Apply(m *model.FAQModel) {
	m.FAQQuestion = r.FAQQuestion
	m.FAQAnswer = r.FAQAnswer
	m.FAQServiceIDs = r.FAQServiceIDs
	m.FAQShowForAll = r.FAQShowForAll
}
