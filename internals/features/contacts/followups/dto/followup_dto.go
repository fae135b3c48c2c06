package dto

import (
	"strings"

	"github.com/google/uuid"

	contactModel "coursedesk_backend/internals/features/contacts/contacts/model"
	"coursedesk_backend/internals/features/contacts/followups/model"
)

type FollowupRequest struct {
	ContactID       string `json:"contact_id" validate:"required,uuid"`
	Status          string `json:"status" validate:"required,max=80"`
	FollowupMessage string `json:"followup_message" validate:"required"`
}

func (r *FollowupRequest) Normalize() {
	r.ContactID = strings.TrimSpace(r.ContactID)
	r.Status = strings.TrimSpace(r.Status)
	r.FollowupMessage = strings.TrimSpace(r.FollowupMessage)
}

// ContactFollowups is one contact with its follow-ups, newest first.
type ContactFollowups struct {
	ContactID uuid.UUID                  `json:"contact_id"`
	Contact   *contactModel.ContactModel `json:"contact"`
	Followups []model.FollowupModel      `json:"followups"`
}

// GroupByContact groups rows that are already sorted newest first. Groups keep
// the order of their first row, so the most recently updated contact leads.
func GroupByContact(rows []model.FollowupModel, contacts map[uuid.UUID]*contactModel.ContactModel) []ContactFollowups {
	out := []ContactFollowups{}
	index := map[uuid.UUID]int{}
	for _, f := range rows {
		i, ok := index[f.FollowupContactID]
		if !ok {
			i = len(out)
			index[f.FollowupContactID] = i
			out = append(out, ContactFollowups{
				ContactID: f.FollowupContactID,
				Contact:   contacts[f.FollowupContactID],
				Followups: []model.FollowupModel{},
			})
		}
		out[i].Followups = append(out[i].Followups, f)
	}
	return out
}
