package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocRawToken        = "raw_token"
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"
	HeaderLegacyToken  = "x-auth-token"
)

// GetRawAccessToken returns the access token from, in order:
// 1) Authorization: Bearer <token>
// 2) x-auth-token header (legacy dashboard)
// 3) Locals("raw_token") set by the auth middleware
// 4) access_token cookie
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "bearer "
	if auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); len(auth) > len(p) && strings.EqualFold(auth[:len(p)], p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Get(HeaderLegacyToken)); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.Cookies(CookieAccessToken))
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(CookieRefreshToken))
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}
