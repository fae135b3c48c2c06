package route

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk_backend/internals/helpers/media"
	"coursedesk_backend/internals/testutil"
)

func TestMentorCRUD(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	MentorAdminRoutes(api, db, testutil.Media())

	res := testutil.Do(t, app, "POST", "/api/a/mentors", map[string]any{"mentor_degree": "MSc"}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
	assert.Equal(t, "mentor_name is required", res.Message())

	res = testutil.Do(t, app, "POST", "/api/a/mentors", map[string]any{
		"mentor_name":   "Asha Rao",
		"mentor_degree": "MSc Computer Science",
		"mentor_image":  testutil.PNGDataURL(t, 6, 6),
	}, token)
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	id := testutil.ID(res.DataMap(), "mentor_id")
	assert.True(t, strings.HasPrefix(res.DataMap()["mentor_image"].(string), "data:image/webp"))

	// mentor names are not unique
	res = testutil.Do(t, app, "POST", "/api/a/mentors", map[string]any{"mentor_name": "Asha Rao"}, token)
	require.Equal(t, fiber.StatusCreated, res.Status)
	assert.Equal(t, "", res.DataMap()["mentor_image"])

	res = testutil.Do(t, app, "GET", "/api/a/mentors?q=computer", nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Len(t, res.DataList(), 1)

	res = testutil.Do(t, app, "PUT", "/api/a/mentors/"+id, map[string]any{"mentor_name": "Asha R."}, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Equal(t, "Asha R.", res.DataMap()["mentor_name"])
	assert.Equal(t, "", res.DataMap()["mentor_degree"])
	assert.NotEmpty(t, res.DataMap()["mentor_image"])

	res = testutil.Do(t, app, "DELETE", "/api/a/mentors/"+id, nil, token)
	assert.Equal(t, fiber.StatusOK, res.Status)
}

func TestMentorImageSurvivesFailedUpdate(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	store := testutil.NewObjectStore()
	MentorAdminRoutes(api, db, media.NewService(store, media.DefaultOptions()))

	res := testutil.Do(t, app, "POST", "/api/a/mentors", map[string]any{
		"mentor_name":  "Ravi Kumar",
		"mentor_image": testutil.PNGDataURL(t, 6, 6),
	}, token)
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	id := testutil.ID(res.DataMap(), "mentor_id")
	original := res.DataMap()["mentor_image"].(string)
	require.True(t, store.Has(original))

	require.NoError(t, db.Exec(`CREATE TRIGGER mentors_locked BEFORE UPDATE ON mentors
		BEGIN SELECT RAISE(ABORT, 'mentors are locked'); END`).Error)

	res = testutil.Do(t, app, "PUT", "/api/a/mentors/"+id, map[string]any{
		"mentor_name":  "Ravi Kumar",
		"mentor_image": testutil.PNGDataURL(t, 8, 8),
	}, token)
	require.Equal(t, fiber.StatusInternalServerError, res.Status)
	assert.True(t, store.Has(original), "stored image must outlive a failed update")
	assert.Equal(t, 1, store.Len(), "image uploaded for the failed update is dropped")

	require.NoError(t, db.Exec("DROP TRIGGER mentors_locked").Error)

	res = testutil.Do(t, app, "PUT", "/api/a/mentors/"+id, map[string]any{
		"mentor_name":  "Ravi Kumar",
		"mentor_image": testutil.PNGDataURL(t, 8, 8),
	}, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	replaced := res.DataMap()["mentor_image"].(string)
	assert.NotEqual(t, original, replaced)
	assert.False(t, store.Has(original))
	assert.True(t, store.Has(replaced))
}
