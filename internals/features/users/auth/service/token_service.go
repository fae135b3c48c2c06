package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/configs"
	authModel "coursedesk_backend/internals/features/users/auth/model"
	authRepo "coursedesk_backend/internals/features/users/auth/repository"
	userModel "coursedesk_backend/internals/features/users/user/model"
	helpers "coursedesk_backend/internals/helpers"
	helpersAuth "coursedesk_backend/internals/helpers/auth"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var nowUTC = func() time.Time { return time.Now().UTC() }

func accessTTL() time.Duration {
	if d := configs.Current.Auth.AccessTokenTTL; d > 0 {
		return d
	}
	return accessTTLDefault
}

func refreshTTL() time.Duration {
	if d := configs.Current.Auth.RefreshTokenTTL; d > 0 {
		return d
	}
	return refreshTTLDefault
}

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return configs.JWTRefreshSecret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ==========================
// Claims
// ==========================

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       TokenTypeAccess,
		"jti":       uuid.NewString(),
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"is_admin":  user.IsAdmin,
		"roles":     []userModel.UserRole(user.Roles),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": TokenTypeRefresh,
		"jti": uuid.NewString(),
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL()).Unix(),
	}
}

type tokenPair struct {
	Access  string
	Refresh string
}

// issueTokenPair signs both tokens and stores the refresh token hash.
func issueTokenPair(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel, now time.Time) (*tokenPair, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create refresh token")
	}

	if err := authRepo.CreateRefreshToken(c.UserContext(), db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     helpersAuth.HMACHex(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTL()),
		UserAgent: strptr(c.Get(fiber.HeaderUserAgent)),
		IP:        strptr(c.IP()),
	}); err != nil {
		log.WithError(err).Error("[auth] store refresh token failed")
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to store refresh token")
	}
	return &tokenPair{Access: access, Refresh: refresh}, nil
}

// issueTokensAndRespond finishes a successful login.
func issueTokensAndRespond(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	now := nowUTC()
	pair, err := issueTokenPair(c, db, user, now)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	setAuthCookies(c, pair.Access, pair.Refresh, now)

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"user":          user,
		"access_token":  pair.Access,
		"refresh_token": pair.Refresh,
	})
}

// ==========================
// Cookies
// ==========================

func cookieFlags() (secure bool, sameSite string) {
	if configs.Current.Auth.SecureCookies {
		return true, "None"
	}
	return false, "Lax"
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	secure, sameSite := cookieFlags()
	c.Cookie(&fiber.Cookie{
		Name:     helpers.CookieAccessToken,
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Path:     "/",
		Expires:  now.Add(accessTTL()),
	})
	c.Cookie(&fiber.Cookie{
		Name:     helpers.CookieRefreshToken,
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Path:     "/api/auth",
		Expires:  now.Add(refreshTTL()),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	secure, sameSite := cookieFlags()
	past := time.Unix(0, 0)
	for name, path := range map[string]string{
		helpers.CookieAccessToken:  "/",
		helpers.CookieRefreshToken: "/api/auth",
	} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   secure,
			SameSite: sameSite,
			Path:     path,
			Expires:  past,
		})
	}
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := refreshTokenFromRequest(c)
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token is missing")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token is invalid")
	}
	if typ, _ := claims["typ"].(string); typ != TokenTypeRefresh {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token is invalid")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token is invalid")
	}

	now := nowUTC()
	ctx := c.UserContext()
	stored, err := authRepo.FindActiveRefreshToken(ctx, db, helpersAuth.HMACHex(raw, refreshSecret), now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token is not recognised")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to read refresh token")
	}
	if stored.UserID != userID {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token is invalid")
	}

	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// rotate: the presented token can only be used once
	if err := authRepo.RevokeRefreshTokenByID(ctx, db, stored.ID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token is not recognised")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	pair, err := issueTokenPair(c, db, *user, now)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	setAuthCookies(c, pair.Access, pair.Refresh, now)

	return helpers.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token":  pair.Access,
		"refresh_token": pair.Refresh,
	})
}

func refreshTokenFromRequest(c *fiber.Ctx) string {
	if v := helpers.GetRefreshTokenFromCookie(c); v != "" {
		return v
	}
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&body)
	}
	return strings.TrimSpace(body.RefreshToken)
}
