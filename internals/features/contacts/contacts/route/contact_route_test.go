package route

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	followupModel "coursedesk_backend/internals/features/contacts/followups/model"
	"coursedesk_backend/internals/notifications"
	"coursedesk_backend/internals/testutil"
)

type recordingMailer struct {
	enquiries chan notifications.Enquiry
}

func (m *recordingMailer) SendWelcome(context.Context, string, string) error { return nil }

func (m *recordingMailer) SendContactEnquiry(_ context.Context, e notifications.Enquiry) error {
	m.enquiries <- e
	return nil
}

func TestContactEnquiryFlow(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	mailer := &recordingMailer{enquiries: make(chan notifications.Enquiry, 4)}
	ContactAdminRoutes(api, db, mailer)
	ContactPublicRoutes(app.Group("/api/public"), db, mailer)

	res := testutil.Do(t, app, "POST", "/api/public/contacts", map[string]any{"contact_name": "Ravi"}, "")
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
	assert.Contains(t, res.Body["errors"], "contact_phone")

	res = testutil.Do(t, app, "POST", "/api/public/contacts", map[string]any{
		"contact_name":      "Ravi",
		"contact_email":     " Ravi@Example.com ",
		"contact_subject":   "Fees",
		"contact_course":    "Data Science",
		"contact_is_online": true,
	}, "")
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	id := testutil.ID(res.DataMap(), "contact_id")
	assert.Equal(t, false, res.DataMap()["is_contact_close"])

	select {
	case e := <-mailer.enquiries:
		assert.Equal(t, "ravi@example.com", e.Email)
		assert.True(t, e.IsOnline)
	case <-time.After(2 * time.Second):
		t.Fatal("enquiry mail was not dispatched")
	}

	res = testutil.Do(t, app, "POST", "/api/public/contacts", map[string]any{
		"contact_name":  "Meera",
		"contact_phone": "+91 98765 43210",
	}, "")
	require.Equal(t, fiber.StatusCreated, res.Status)

	res = testutil.Do(t, app, "GET", "/api/a/contacts?q=fees", nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Len(t, res.DataList(), 1)

	res = testutil.Do(t, app, "PATCH", "/api/a/contacts/"+id+"/close", map[string]any{}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)

	res = testutil.Do(t, app, "PATCH", "/api/a/contacts/"+id+"/close", map[string]any{"is_contact_close": true}, token)
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	assert.Equal(t, true, res.DataMap()["is_contact_close"])

	res = testutil.Do(t, app, "GET", "/api/a/contacts?closed=true", nil, token)
	assert.Len(t, res.DataList(), 1)
	res = testutil.Do(t, app, "GET", "/api/a/contacts?closed=false", nil, token)
	assert.Len(t, res.DataList(), 1)
	res = testutil.Do(t, app, "GET", "/api/a/contacts?closed=maybe", nil, token)
	assert.Equal(t, fiber.StatusBadRequest, res.Status)
}

func TestContactDeleteCascadesFollowups(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	ContactAdminRoutes(api, db, nil)
	ContactPublicRoutes(app.Group("/api/public"), db, nil)

	res := testutil.Do(t, app, "POST", "/api/public/contacts", map[string]any{
		"contact_name":  "Ravi",
		"contact_phone": "123",
	}, "")
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	id := testutil.ID(res.DataMap(), "contact_id")

	require.NoError(t, db.Create(&followupModel.FollowupModel{
		FollowupContactID: uuid.MustParse(id),
		FollowupStatus:    "Pending",
		FollowupMessage:   "Called",
	}).Error)

	res = testutil.Do(t, app, "GET", "/api/a/contacts/"+id, nil, token)
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	assert.Len(t, res.DataMap()["followups"], 1)

	res = testutil.Do(t, app, "DELETE", "/api/a/contacts/"+id, nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)

	var n int64
	require.NoError(t, db.Model(&followupModel.FollowupModel{}).Count(&n).Error)
	assert.Zero(t, n)

	res = testutil.Do(t, app, "GET", "/api/a/contacts/"+id, nil, token)
	assert.Equal(t, fiber.StatusNotFound, res.Status)
}

func TestContactFormIsRateLimited(t *testing.T) {
	app, _, db, _ := testutil.AdminAPI(t)
	ContactPublicRoutes(app.Group("/api/public"), db, nil)

	body := map[string]any{"contact_name": "Spam", "contact_phone": "1"}
	for i := 0; i < 5; i++ {
		res := testutil.Do(t, app, "POST", "/api/public/contacts", body, "")
		require.Equal(t, fiber.StatusCreated, res.Status)
	}
	res := testutil.Do(t, app, "POST", "/api/public/contacts", body, "")
	assert.Equal(t, fiber.StatusTooManyRequests, res.Status)
}
