package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"coursedesk_backend/internals/configs"
	authHelper "coursedesk_backend/internals/features/users/auth/helper"
	authRepo "coursedesk_backend/internals/features/users/auth/repository"
	userModel "coursedesk_backend/internals/features/users/user/model"
	helpers "coursedesk_backend/internals/helpers"
	helpersAuth "coursedesk_backend/internals/helpers/auth"
)

const msgBadCredentials = "Identifier or password is incorrect"

/* ==========================
   LOGIN (username/email + password)
========================== */

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)
	if err := helpers.Validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationErrors(err))
	}

	user, err := authRepo.FindUserByIdentifier(c.UserContext(), db, input.Identifier)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Error("[login] lookup failed")
		}
		// same bcrypt cost as a wrong password
		_ = authHelper.CheckPasswordHash(dummyPasswordHash(), input.Password)
		return helpers.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an administrator.")
	}

	return issueTokensAndRespond(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

type GoogleIdentity struct {
	Sub           string
	Email         string
	EmailVerified bool
	Name          string
}

// VerifyGoogleIDToken checks the token against Google's certificates for clientID.
var VerifyGoogleIDToken = func(idToken, clientID string) (*GoogleIdentity, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}
	return &GoogleIdentity{
		Sub:           claimSet.Sub,
		Email:         claimSet.Email,
		EmailVerified: claimSet.EmailVerified,
		Name:          claimSet.Name,
	}, nil
}

// LoginGoogle signs in an existing account by google id, or by email when Google
// has verified that email. Accounts are created by administrators only.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationErrors(err))
	}
	if configs.GoogleClientID == "" {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	identity, err := VerifyGoogleIDToken(input.IDToken, configs.GoogleClientID)
	if err != nil || identity.Sub == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	ctx := c.UserContext()
	user, err := authRepo.FindUserByGoogleID(ctx, db, identity.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) && identity.Email != "" && identity.EmailVerified {
		user, err = authRepo.FindUserByEmail(ctx, db, identity.Email)
		if err == nil && user.GoogleID == nil {
			if lerr := authRepo.LinkGoogleID(ctx, db, user.ID, identity.Sub); lerr != nil {
				log.WithError(lerr).Warn("[login-google] link google id failed")
			}
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusForbidden, "No dashboard account is linked to this Google account")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to read user")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an administrator.")
	}

	return issueTokensAndRespond(c, db, *user)
}

/* ==========================
   LOGOUT
========================== */

// Logout blacklists the access token, revokes the refresh token and clears cookies.
// It succeeds even without a valid session.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	ctx := c.UserContext()
	now := nowUTC()

	if raw := helpers.GetRawAccessToken(c); raw != "" && configs.JWTSecret != "" {
		if ttl, ok := blacklistTTL(raw); ok {
			if err := helpersAuth.Add(ctx, db, raw, configs.JWTSecret, now.Add(ttl)); err != nil {
				log.WithError(err).Warn("[logout] blacklist failed")
			}
		}
	}

	if rt := refreshTokenFromRequest(c); rt != "" && configs.JWTRefreshSecret != "" {
		if err := authRepo.RevokeRefreshTokenByHash(ctx, db, helpersAuth.HMACHex(rt, configs.JWTRefreshSecret), now); err != nil {
			log.WithError(err).Warn("[logout] revoke refresh failed")
		}
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logged out", nil)
}

// blacklistTTL keeps the entry for the token's remaining life plus a minute.
// Tokens not signed with the access secret, or already expired, are not recorded.
func blacklistTTL(accessToken string) (time.Duration, bool) {
	const grace = 60 * time.Second

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return 0, false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		fallback := time.Duration(configs.Current.Auth.BlacklistTTLDays) * 24 * time.Hour
		if fallback <= 0 {
			fallback = accessTTL()
		}
		return fallback, true
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 {
		return 0, false
	}
	return remaining + grace, true
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// dummyPasswordHash is compared against when no account matches the identifier.
func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		h, err := authHelper.HashPassword("coursedesk-no-such-account")
		if err != nil {
			log.WithError(err).Warn("[login] dummy hash failed")
		}
		dummyHash = h
	})
	return dummyHash
}

/* ==========================
   ME
========================== */

// Me returns the current user with its roles.
func Me(db *gorm.DB, c *fiber.Ctx) error {
	user, err := currentUser(db, c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonOK(c, "ok", fiber.Map{
		"id":       user.ID,
		"user":     user,
		"roles":    user.Roles,
		"is_admin": user.IsAdmin,
	})
}

// MeMenu returns the sidebar items the current user may open.
func MeMenu(db *gorm.DB, c *fiber.Ctx) error {
	user, err := currentUser(db, c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonOK(c, "ok", user.VisibleMenu())
}

func currentUser(db *gorm.DB, c *fiber.Ctx) (*userModel.UserModel, error) {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	user, err := authRepo.FindUserByID(c.UserContext(), db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return user, nil
}
