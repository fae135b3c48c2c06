package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk_backend/internals/testutil"
)

func TestCareerCRUD(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	CareerAdminRoutes(api, db)

	res := testutil.Do(t, app, "POST", "/api/a/careers", map[string]any{"career_name": "Data Analyst"}, token)
	require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
	analyst := testutil.ID(res.DataMap(), "career_id")

	res = testutil.Do(t, app, "POST", "/api/a/careers", map[string]any{"career_name": "data analyst "}, token)
	assert.Equal(t, fiber.StatusConflict, res.Status)

	res = testutil.Do(t, app, "POST", "/api/a/careers", map[string]any{"career_name": "Web Developer"}, token)
	require.Equal(t, fiber.StatusCreated, res.Status)
	dev := testutil.ID(res.DataMap(), "career_id")

	res = testutil.Do(t, app, "PUT", "/api/a/careers/"+dev, map[string]any{"career_name": "DATA ANALYST"}, token)
	assert.Equal(t, fiber.StatusConflict, res.Status)

	// renaming to a different case of its own name is allowed
	res = testutil.Do(t, app, "PUT", "/api/a/careers/"+analyst, map[string]any{"career_name": "Data analyst"}, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Equal(t, "Data analyst", res.DataMap()["career_name"])

	res = testutil.Do(t, app, "GET", "/api/a/careers", nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Len(t, res.DataList(), 2)

	res = testutil.Do(t, app, "DELETE", "/api/a/careers/"+dev, nil, token)
	assert.Equal(t, fiber.StatusOK, res.Status)
	res = testutil.Do(t, app, "DELETE", "/api/a/careers/"+dev, nil, token)
	assert.Equal(t, fiber.StatusNotFound, res.Status)
}
