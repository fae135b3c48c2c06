package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Full Stack Web Development": "full-stack-web-development",
		"  Café  Crème ":              "cafe-creme",
		"C++ / C#":                    "c-c",
		"!!!":                         "item",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in, 0), in)
	}
	assert.Equal(t, "abc", Slugify("abc-def", 3))
	assert.Equal(t, "abc", Slugify("abc-def", 4))
}

func TestWithSuffixFitsMaxLen(t *testing.T) {
	assert.Equal(t, "blog-2", withSuffix("blog", "-2", 10))
	assert.Equal(t, "long-sl-12", withSuffix("long-slug-here", "-12", 10))
	assert.Equal(t, "abc-2", withSuffix("abc-def", "-2", 5))
	assert.Equal(t, "i-100", withSuffix("anything", "-100", 4))
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/?page=3&limit=500&q=%20Java%20", nil))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 100, got.PerPage)
	assert.Equal(t, 200, got.Offset)
	assert.Equal(t, "Java", got.Q)
	assert.Equal(t, "%java%", got.LikePattern())
}

type signupReq struct {
	Email    string `json:"email" validate:"required,loose_email"`
	UserName string `json:"user_name" validate:"notblank"`
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	err := Validate.Struct(signupReq{Email: "nope", UserName: "  "})
	require.Error(t, err)

	fields := ValidationErrors(err)
	assert.Equal(t, []string{"email must be a valid email"}, fields["email"])
	assert.Equal(t, []string{"user_name is required"}, fields["user_name"])
}

func TestErrorEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusForbidden, "no access")
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return JsonValidationError(c, FieldError("name", "name is required"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/forbidden", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.Success)
	assert.Equal(t, "no access", body.Message)
	assert.Equal(t, "FORBIDDEN", body.ErrorCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/invalid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	raw, _ = io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "name is required", body.Message)
}

func TestGetRawAccessTokenOrder(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetRawAccessToken(c)
		return nil
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("x-auth-token", "legacy")
	req.Header.Set("Cookie", "access_token=cookie")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "legacy", got)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("x-auth-token", "legacy")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", "access_token=cookie")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "cookie", got)
}
