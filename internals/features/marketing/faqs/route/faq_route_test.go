package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursedesk_backend/internals/constants"
	"coursedesk_backend/internals/testutil"
)

func TestFAQSectionGate(t *testing.T) {
	app, api, db, _ := testutil.AdminAPI(t)
	FAQAdminRoutes(api, db)

	editor := testutil.CreateUser(t, db, testutil.UserOpts{Sections: []string{constants.SectionFAQs}})
	other := testutil.CreateUser(t, db, testutil.UserOpts{Sections: []string{constants.SectionUsers}})

	res := testutil.Do(t, app, "GET", "/api/a/faqs", nil, testutil.AccessToken(t, other))
	assert.Equal(t, fiber.StatusForbidden, res.Status)

	res = testutil.Do(t, app, "POST", "/api/a/faqs", map[string]any{
		"faq_question":     "How long?",
		"faq_answer":       "Six months.",
		"faq_show_for_all": true,
	}, testutil.AccessToken(t, editor))
	assert.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
}

func TestFAQServiceFilter(t *testing.T) {
	app, api, db, token := testutil.AdminAPI(t)
	FAQAdminRoutes(api, db)
	FAQPublicRoutes(app.Group("/api/public"), db)

	res := testutil.Do(t, app, "POST", "/api/a/faqs", map[string]any{
		"faq_question":    "Q",
		"faq_answer":      "A",
		"faq_service_ids": []string{"  ", ""},
	}, token)
	require.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
	assert.Contains(t, res.Body["errors"], "faq_service_ids")

	create := func(question string, ids []string, all bool) string {
		res := testutil.Do(t, app, "POST", "/api/a/faqs", map[string]any{
			"faq_question":     question,
			"faq_answer":       "answer",
			"faq_service_ids":  ids,
			"faq_show_for_all": all,
		}, token)
		require.Equal(t, fiber.StatusCreated, res.Status, string(res.Raw))
		return testutil.ID(res.DataMap(), "faq_id")
	}
	create("Placement?", []string{"placement", "placement"}, false)
	create("Fees?", []string{"fees"}, false)
	general := create("General?", []string{"fees"}, true)

	res = testutil.Do(t, app, "GET", "/api/public/faqs?service_id=placement", nil, "")
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Len(t, res.DataList(), 2)

	res = testutil.Do(t, app, "GET", "/api/a/faqs/"+general, nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Empty(t, res.DataMap()["faq_service_ids"])

	res = testutil.Do(t, app, "GET", "/api/public/faqs?q=fees", nil, "")
	assert.Len(t, res.DataList(), 1)

	res = testutil.Do(t, app, "DELETE", "/api/a/faqs/"+general, nil, token)
	assert.Equal(t, fiber.StatusOK, res.Status)
	res = testutil.Do(t, app, "GET", "/api/public/faqs?service_id=placement", nil, "")
	assert.Len(t, res.DataList(), 1)
}
