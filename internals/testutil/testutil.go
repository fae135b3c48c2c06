// Package testutil builds in-memory databases, users and HTTP helpers for tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"coursedesk_backend/internals/configs"
	database "coursedesk_backend/internals/databases"
	authHelper "coursedesk_backend/internals/features/users/auth/helper"
	userModel "coursedesk_backend/internals/features/users/user/model"
	helper "coursedesk_backend/internals/helpers"
	"coursedesk_backend/internals/helpers/media"
	authMiddleware "coursedesk_backend/internals/middlewares/auth"
)

const (
	JWTSecret        = "test-access-secret"
	JWTRefreshSecret = "test-refresh-secret"
	Password         = "secret123"
)

// UseConfig installs a configuration suitable for tests.
func UseConfig(t *testing.T) configs.Config {
	t.Helper()
	cfg := configs.Config{
		Port:   "0",
		AppEnv: "test",
		Auth: configs.AuthConfig{
			JWTSecret:        JWTSecret,
			JWTRefreshSecret: JWTRefreshSecret,
			AccessTokenTTL:   time.Hour,
			RefreshTokenTTL:  24 * time.Hour,
			BlacklistTTLDays: 7,
		},
	}
	prev := configs.Current
	configs.Apply(cfg)
	t.Cleanup(func() { configs.Apply(prev) })
	return cfg
}

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

type UserOpts struct {
	UserName string
	Email    string
	IsAdmin  bool
	Inactive bool
	Sections []string
}

// CreateUser inserts a user whose password is Password.
func CreateUser(t *testing.T, db *gorm.DB, opts UserOpts) *userModel.UserModel {
	t.Helper()
	if opts.UserName == "" {
		opts.UserName = "user_" + uuid.NewString()[:8]
	}
	if opts.Email == "" {
		opts.Email = opts.UserName + "@example.com"
	}
	hash, err := authHelper.HashPassword(Password)
	require.NoError(t, err)

	roles := userModel.DefaultRoles()
	for i := range roles {
		for _, s := range opts.Sections {
			if roles[i].Name == s {
				roles[i].Actions.Permission = true
			}
		}
	}

	u := &userModel.UserModel{
		UserName: opts.UserName,
		Email:    opts.Email,
		Password: hash,
		IsAdmin:  opts.IsAdmin,
		IsActive: !opts.Inactive,
		Roles:    roles,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// AccessToken signs an access token for u with the test secret.
func AccessToken(t *testing.T, u *userModel.UserModel) string {
	t.Helper()
	now := time.Now()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ":       "access",
		"jti":       uuid.NewString(),
		"sub":       u.ID.String(),
		"id":        u.ID.String(),
		"user_name": u.UserName,
		"is_admin":  u.IsAdmin,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
	}).SignedString([]byte(JWTSecret))
	require.NoError(t, err)
	return tok
}

// NewApp returns a Fiber app using the service error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
}

// AdminAPI returns an app with an authenticated /api/a group, its database and
// an administrator token. Routes are mounted on the returned router by the caller.
func AdminAPI(t *testing.T) (*fiber.App, fiber.Router, *gorm.DB, string) {
	t.Helper()
	UseConfig(t)
	db := NewDB(t)
	app := NewApp()
	api := app.Group("/api/a", authMiddleware.AuthMiddleware(db))
	admin := CreateUser(t, db, UserOpts{UserName: "admin", IsAdmin: true})
	return app, api, db, AccessToken(t, admin)
}

// Media returns an image service that keeps images inline.
func Media() *media.Service {
	return media.NewService(media.InlineStore{}, media.DefaultOptions())
}

// ObjectStore is an in-memory media.Store that remembers live objects.
type ObjectStore struct {
	mu      sync.Mutex
	objects map[string]bool
}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{objects: map[string]bool{}}
}

func (s *ObjectStore) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := "https://cdn.test/" + key
	s.objects[url] = true
	return url, nil
}

func (s *ObjectStore) Delete(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, url)
	return nil
}

func (s *ObjectStore) Has(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[url]
}

func (s *ObjectStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// ID reads a string id field from a response object.
func ID(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Response is a decoded JSON envelope.
type Response struct {
	Status int
	Body   map[string]any
	Header map[string][]string
	Raw    []byte
}

func (r Response) Data() any { return r.Body["data"] }

func (r Response) DataMap() map[string]any {
	m, _ := r.Body["data"].(map[string]any)
	return m
}

func (r Response) DataList() []any {
	l, _ := r.Body["data"].([]any)
	return l
}

func (r Response) Message() string {
	s, _ := r.Body["message"].(string)
	return s
}

// Do sends a JSON request; token may be empty.
func Do(t *testing.T, app *fiber.App, method, path string, body any, token string) Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{Status: resp.StatusCode, Header: resp.Header, Raw: raw}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out.Body)
	}
	return out
}

// PNGDataURL encodes a small generated PNG as a data URL.
func PNGDataURL(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: 200, G: uint8(x * 4), B: uint8(y * 4), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
