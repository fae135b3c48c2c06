package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk_backend/internals/testutil"
)

func TestPlacementCRUD(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	PlacementAdminRoutes(api, db, testutil.Media())
	PlacementPublicRoutes(app.Group("/api/public"), db, testutil.Media())

	res := testutil.Do(t, app, "POST", "/api/a/placements", map[string]any{"placement_name": "Acme"}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)

	res = testutil.Do(t, app, "POST", "/api/a/placements", map[string]any{
		"placement_name":  "Acme",
		"placement_image": testutil.PNGDataURL(t, 12, 6),
	}, token)
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	id := testutil.ID(res.DataMap(), "placement_id")

	res = testutil.Do(t, app, "PUT", "/api/a/placements/"+id, map[string]any{"placement_name": "Acme Corp"}, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Equal(t, "Acme Corp", res.DataMap()["placement_name"])
	assert.NotEmpty(t, res.DataMap()["placement_image"])

	res = testutil.Do(t, app, "GET", "/api/public/placements", nil, "")
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Len(t, res.DataList(), 1)

	res = testutil.Do(t, app, "DELETE", "/api/a/placements/"+id, nil, token)
	assert.Equal(t, fiber.StatusOK, res.Status)
}
