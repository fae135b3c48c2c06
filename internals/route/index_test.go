package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk_backend/internals/notifications"
	"coursedesk_backend/internals/testutil"
)

func TestSetupRoutesMountsEveryGroup(t *testing.T) {
	testutil.UseConfig(t)
	db := testutil.NewDB(t)
	app := testutil.NewApp()
	SetupRoutes(app, db, testutil.Media(), notifications.LogSender{})

	res := testutil.Do(t, app, "GET", "/health", nil, "")
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	assert.Equal(t, "OK", res.Body["status"])

	for _, path := range []string{
		"/api/public/courses", "/api/public/parent-courses", "/api/public/softwares",
		"/api/public/mentors", "/api/public/careers", "/api/public/demos",
		"/api/public/placements", "/api/public/testimonials", "/api/public/blogs",
		"/api/public/faqs",
	} {
		res := testutil.Do(t, app, "GET", path, nil, "")
		assert.Equal(t, fiber.StatusOK, res.Status, path)
	}

	for _, path := range []string{
		"/api/a/users", "/api/a/courses", "/api/a/testimonials", "/api/a/faqs",
		"/api/a/seos", "/api/a/contacts", "/api/a/followups", "/api/a/statuses",
	} {
		res := testutil.Do(t, app, "GET", path, nil, "")
		assert.Equal(t, fiber.StatusUnauthorized, res.Status, path)
	}
}

func TestLoginThenUseDashboard(t *testing.T) {
	testutil.UseConfig(t)
	db := testutil.NewDB(t)
	app := testutil.NewApp()
	SetupRoutes(app, db, testutil.Media(), notifications.LogSender{})

	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "desk", Sections: []string{"Contact"}})

	res := testutil.Do(t, app, "POST", "/api/auth/login", map[string]any{
		"identifier": "desk",
		"password":   testutil.Password,
	}, "")
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	token, _ := res.DataMap()["access_token"].(string)
	require.NotEmpty(t, token)

	res = testutil.Do(t, app, "GET", "/api/a/contacts", nil, token)
	assert.Equal(t, fiber.StatusOK, res.Status)

	res = testutil.Do(t, app, "GET", "/api/a/courses", nil, token)
	assert.Equal(t, fiber.StatusForbidden, res.Status)
}
