package route

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"coursedesk_backend/internals/configs"
	"coursedesk_backend/internals/constants"
	authModel "coursedesk_backend/internals/features/users/auth/model"
	"coursedesk_backend/internals/features/users/auth/service"
	userModel "coursedesk_backend/internals/features/users/user/model"
	"coursedesk_backend/internals/testutil"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	testutil.UseConfig(t)
	db := testutil.NewDB(t)
	app := testutil.NewApp()
	AuthRoutes(app, db)
	return app, db
}

func login(t *testing.T, app *fiber.App, identifier, password string) testutil.Response {
	return testutil.Do(t, app, "POST", "/api/auth/login", map[string]string{
		"identifier": identifier,
		"password":   password,
	}, "")
}

func TestLoginByEmailOrUserName(t *testing.T) {
	app, db := setup(t)
	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "ann", Email: "ann@example.com"})

	res := login(t, app, "ANN@example.com", testutil.Password)
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	data := res.DataMap()
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "ann", user["user_name"])
	assert.NotContains(t, user, "password")
	assert.Contains(t, res.Header["Set-Cookie"][0], "access_token=")

	res = login(t, app, " ann ", testutil.Password)
	assert.Equal(t, fiber.StatusOK, res.Status)
}

func TestLoginRejectsBadCredentialsAndInactive(t *testing.T) {
	app, db := setup(t)
	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "bob"})
	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "carl", Inactive: true})

	res := login(t, app, "bob", "wrong-password")
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)

	res = login(t, app, "nobody", testutil.Password)
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)
	assert.Equal(t, "Identifier or password is incorrect", res.Message())

	res = login(t, app, "carl", testutil.Password)
	assert.Equal(t, fiber.StatusForbidden, res.Status)

	res = login(t, app, "", "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.Status)
}

func TestMeAndMenu(t *testing.T) {
	app, db := setup(t)
	u := testutil.CreateUser(t, db, testutil.UserOpts{Sections: []string{constants.SectionFAQs}})
	token := testutil.AccessToken(t, u)

	res := testutil.Do(t, app, "GET", "/api/auth/me", nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	assert.Equal(t, u.ID.String(), res.DataMap()["id"])
	assert.Equal(t, false, res.DataMap()["is_admin"])
	assert.Len(t, res.DataMap()["roles"], len(constants.Sections))

	res = testutil.Do(t, app, "GET", "/api/auth/me/menu", nil, token)
	require.Equal(t, fiber.StatusOK, res.Status)
	items := res.DataList()
	require.Len(t, items, 1)
	assert.Equal(t, "/faq", items[0].(map[string]any)["path"])

	res = testutil.Do(t, app, "GET", "/api/auth/me", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)
}

func TestDeactivatedAfterIssueIsForbidden(t *testing.T) {
	app, db := setup(t)
	u := testutil.CreateUser(t, db, testutil.UserOpts{})
	token := testutil.AccessToken(t, u)

	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", u.ID).Update("is_active", false).Error)

	res := testutil.Do(t, app, "GET", "/api/auth/me", nil, token)
	assert.Equal(t, fiber.StatusForbidden, res.Status)
}

func TestRefreshRotatesToken(t *testing.T) {
	app, db := setup(t)
	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "dora"})

	res := login(t, app, "dora", testutil.Password)
	require.Equal(t, fiber.StatusOK, res.Status)
	oldRefresh := res.DataMap()["refresh_token"].(string)

	res = testutil.Do(t, app, "POST", "/api/auth/refresh-token", map[string]string{"refresh_token": oldRefresh}, "")
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))
	newRefresh := res.DataMap()["refresh_token"].(string)
	assert.NotEqual(t, oldRefresh, newRefresh)
	assert.NotEmpty(t, res.DataMap()["access_token"])

	// the old token was revoked by the rotation
	res = testutil.Do(t, app, "POST", "/api/auth/refresh-token", map[string]string{"refresh_token": oldRefresh}, "")
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)

	res = testutil.Do(t, app, "POST", "/api/auth/refresh-token", map[string]string{"refresh_token": newRefresh}, "")
	assert.Equal(t, fiber.StatusOK, res.Status)

	res = testutil.Do(t, app, "POST", "/api/auth/refresh-token", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)
}

func TestLogoutBlacklistsAccessToken(t *testing.T) {
	app, db := setup(t)
	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "eve"})

	res := login(t, app, "eve", testutil.Password)
	require.Equal(t, fiber.StatusOK, res.Status)
	access := res.DataMap()["access_token"].(string)
	refresh := res.DataMap()["refresh_token"].(string)

	res = testutil.Do(t, app, "POST", "/api/auth/logout", map[string]string{"refresh_token": refresh}, access)
	require.Equal(t, fiber.StatusOK, res.Status)

	res = testutil.Do(t, app, "GET", "/api/auth/me", nil, access)
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)

	res = testutil.Do(t, app, "POST", "/api/auth/refresh-token", map[string]string{"refresh_token": refresh}, "")
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)

	// idempotent
	res = testutil.Do(t, app, "POST", "/api/auth/logout", nil, "")
	assert.Equal(t, fiber.StatusOK, res.Status)
}

func TestChangePassword(t *testing.T) {
	app, db := setup(t)
	u := testutil.CreateUser(t, db, testutil.UserOpts{UserName: "fred"})
	token := testutil.AccessToken(t, u)

	res := testutil.Do(t, app, "POST", "/api/auth/change-password", map[string]string{
		"current_password": "not-it",
		"new_password":     "brand-new",
	}, token)
	assert.Equal(t, fiber.StatusBadRequest, res.Status)

	res = testutil.Do(t, app, "POST", "/api/auth/change-password", map[string]string{
		"current_password": testutil.Password,
		"new_password":     "123",
	}, token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.Status)

	res = testutil.Do(t, app, "POST", "/api/auth/change-password", map[string]string{
		"current_password": testutil.Password,
		"new_password":     "brand-new",
	}, token)
	require.Equal(t, fiber.StatusOK, res.Status)

	assert.Equal(t, fiber.StatusUnauthorized, login(t, app, "fred", testutil.Password).Status)
	assert.Equal(t, fiber.StatusOK, login(t, app, "fred", "brand-new").Status)
}

func TestLoginGoogle(t *testing.T) {
	app, db := setup(t)
	u := testutil.CreateUser(t, db, testutil.UserOpts{UserName: "gina", Email: "gina@example.com"})

	body := map[string]string{"id_token": "google-token"}
	res := testutil.Do(t, app, "POST", "/api/auth/login-google", body, "")
	assert.Equal(t, fiber.StatusServiceUnavailable, res.Status)

	cfg := configs.Current
	cfg.Auth.GoogleClientID = "client-id"
	configs.Apply(cfg)

	orig := service.VerifyGoogleIDToken
	t.Cleanup(func() { service.VerifyGoogleIDToken = orig })

	service.VerifyGoogleIDToken = func(idToken, clientID string) (*service.GoogleIdentity, error) {
		return &service.GoogleIdentity{Sub: "g-123", Email: "GINA@example.com", EmailVerified: true}, nil
	}
	res = testutil.Do(t, app, "POST", "/api/auth/login-google", body, "")
	require.Equal(t, fiber.StatusOK, res.Status, string(res.Raw))

	var linked userModel.UserModel
	require.NoError(t, db.First(&linked, "id = ?", u.ID).Error)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "g-123", *linked.GoogleID)

	service.VerifyGoogleIDToken = func(idToken, clientID string) (*service.GoogleIdentity, error) {
		return &service.GoogleIdentity{Sub: "g-999", Email: "stranger@example.com", EmailVerified: true}, nil
	}
	res = testutil.Do(t, app, "POST", "/api/auth/login-google", body, "")
	assert.Equal(t, fiber.StatusForbidden, res.Status)

	service.VerifyGoogleIDToken = func(idToken, clientID string) (*service.GoogleIdentity, error) {
		return nil, errors.New("bad signature")
	}
	res = testutil.Do(t, app, "POST", "/api/auth/login-google", body, "")
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)
}

func TestLoginGoogleIgnoresUnverifiedEmail(t *testing.T) {
	app, db := setup(t)
	admin := testutil.CreateUser(t, db, testutil.UserOpts{UserName: "root", Email: "root@example.com", IsAdmin: true})

	cfg := configs.Current
	cfg.Auth.GoogleClientID = "client-id"
	configs.Apply(cfg)

	orig := service.VerifyGoogleIDToken
	t.Cleanup(func() { service.VerifyGoogleIDToken = orig })
	service.VerifyGoogleIDToken = func(idToken, clientID string) (*service.GoogleIdentity, error) {
		return &service.GoogleIdentity{Sub: "other-sub", Email: "root@example.com"}, nil
	}

	res := testutil.Do(t, app, "POST", "/api/auth/login-google", map[string]string{"id_token": "google-token"}, "")
	assert.Equal(t, fiber.StatusForbidden, res.Status)
	assert.Nil(t, res.DataMap()["access_token"])

	var stored userModel.UserModel
	require.NoError(t, db.First(&stored, "id = ?", admin.ID).Error)
	assert.Nil(t, stored.GoogleID)
}

func TestLogoutSkipsForeignTokens(t *testing.T) {
	app, db := setup(t)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "00000000-0000-0000-0000-000000000001",
		"typ": "access",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("someone-elses-secret"))
	require.NoError(t, err)

	res := testutil.Do(t, app, "POST", "/api/auth/logout", nil, forged)
	require.Equal(t, fiber.StatusOK, res.Status)

	var n int64
	require.NoError(t, db.Model(&authModel.TokenBlacklist{}).Count(&n).Error)
	assert.Zero(t, n)

	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "ivy"})
	res = login(t, app, "ivy", testutil.Password)
	require.Equal(t, fiber.StatusOK, res.Status)

	res = testutil.Do(t, app, "POST", "/api/auth/logout", nil, res.DataMap()["access_token"].(string))
	require.Equal(t, fiber.StatusOK, res.Status)
	require.NoError(t, db.Model(&authModel.TokenBlacklist{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRefreshTokensAreStoredHashed(t *testing.T) {
	app, db := setup(t)
	testutil.CreateUser(t, db, testutil.UserOpts{UserName: "hank"})

	res := login(t, app, "hank", testutil.Password)
	require.Equal(t, fiber.StatusOK, res.Status)
	raw := res.DataMap()["refresh_token"].(string)

	var rows []authModel.RefreshTokenModel
	require.NoError(t, db.WithContext(context.Background()).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Token, 64)
	assert.NotEqual(t, raw, rows[0].Token)
	assert.True(t, rows[0].ExpiresAt.After(time.Now()))
}
