package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactModel "coursedesk_backend/internals/features/contacts/contacts/model"
	followupModel "coursedesk_backend/internals/features/contacts/followups/model"
	"coursedesk_backend/internals/features/contacts/statuses/model"
	"coursedesk_backend/internals/testutil"
)

func TestStatusCRUD(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	StatusAdminRoutes(api, db)

	pending := model.StatusModel{StatusName: model.StatusPending, StatusIsSystem: true}
	require.NoError(t, db.Create(&pending).Error)

	res := testutil.Do(t, app, "POST", "/api/a/statuses", map[string]any{"status_name": "   "}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)

	res = testutil.Do(t, app, "POST", "/api/a/statuses", map[string]any{"status_name": "pending"}, token)
	require.Equal(t, fiber.StatusConflict, res.Status)

	res = testutil.Do(t, app, "POST", "/api/a/statuses", map[string]any{"status_name": "  Call   back "}, token)
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	assert.Equal(t, "Call back", res.DataMap()["status_name"])
	id := testutil.ID(res.DataMap(), "status_id")

	res = testutil.Do(t, app, "GET", "/api/a/statuses", nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	list := res.DataList()
	require.Len(t, list, 2)
	assert.Equal(t, model.StatusPending, list[0].(map[string]any)["status_name"])

	res = testutil.Do(t, app, "PUT", "/api/a/statuses/"+pending.StatusID.String(), map[string]any{"status_name": "Waiting"}, token)
	assert.Equal(t, fiber.StatusBadRequest, res.Status)
	res = testutil.Do(t, app, "DELETE", "/api/a/statuses/"+pending.StatusID.String(), nil, token)
	assert.Equal(t, fiber.StatusBadRequest, res.Status)

	contact := contactModel.ContactModel{ContactName: "Ravi", ContactPhone: "1"}
	require.NoError(t, db.Create(&contact).Error)
	require.NoError(t, db.Create(&followupModel.FollowupModel{
		FollowupContactID: contact.ContactID,
		FollowupStatus:    "Call back",
		FollowupMessage:   "Busy",
	}).Error)

	res = testutil.Do(t, app, "PUT", "/api/a/statuses/"+id, map[string]any{"status_name": "Call later"}, token)
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))

	var f followupModel.FollowupModel
	require.NoError(t, db.First(&f).Error)
	assert.Equal(t, "Call later", f.FollowupStatus)

	res = testutil.Do(t, app, "DELETE", "/api/a/statuses/"+id, nil, token)
	require.Equal(t, fiber.StatusConflict, res.Status)

	require.NoError(t, db.Delete(&followupModel.FollowupModel{}, "followup_id = ?", f.FollowupID).Error)
	res = testutil.Do(t, app, "DELETE", "/api/a/statuses/"+id, nil, token)
	assert.Equal(t, fiber.StatusOK, res.Status)
}

func TestStatusesRequireContactSection(t *testing.T) {
	app, api, db, _ := testutil.AdminAPI(t)
	StatusAdminRoutes(api, db)

	u := testutil.CreateUser(t, db, testutil.UserOpts{})
	res := testutil.Do(t, app, "GET", "/api/a/statuses", nil, testutil.AccessToken(t, u))
	assert.Equal(t, fiber.StatusForbidden, res.Status)
}
