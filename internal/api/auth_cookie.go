package api

import (
	"strings"
	"time"

	"github.com/cogbio/labsite/internal/session"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.TokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
	})
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

// identityFromCookie decodes the session cookie. A missing cookie and an
// invalid one are indistinguishable to callers.
func (handler *Handler) identityFromCookie(c *fiber.Ctx) (session.Identity, error) {
	raw := strings.TrimSpace(c.Cookies(authCookieName))
	if raw == "" {
		return session.Identity{}, session.ErrInvalidToken
	}
	return handler.codec.Verify(raw)
}
