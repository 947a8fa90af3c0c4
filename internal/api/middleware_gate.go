package api

import (
	"strings"

	"github.com/cogbio/labsite/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	adminLoginPath = "/admin/login"
	adminHomePath  = "/admin"
	myProfilePath  = "/my-profile"
)

// AdminGate guards every /admin route. The decision depends only on the
// route class, cookie validity and the decoded role; it never touches the
// database. A consequence worth knowing: a token minted before an account
// was deactivated stays valid until it expires.
func (handler *Handler) AdminGate(c *fiber.Ctx) error {
	identity, err := handler.identityFromCookie(c)

	if isAdminLoginPath(c.Path()) {
		if err != nil {
			// Invalid cookie is treated as absent: show the login page.
			return c.Next()
		}
		if identity.Role == models.RoleMember {
			return c.Redirect(myProfilePath, fiber.StatusSeeOther)
		}
		return c.Redirect(adminHomePath, fiber.StatusSeeOther)
	}

	if err != nil {
		return c.Redirect(adminLoginPath, fiber.StatusSeeOther)
	}
	if identity.Role == models.RoleMember {
		// Members never enter the admin area, valid session or not.
		return c.Redirect(myProfilePath, fiber.StatusSeeOther)
	}

	c.Locals(contextIdentityKey, identity)
	return c.Next()
}

// ProfileGate guards the self-service profile area. Any authenticated role
// may pass; admins are allowed to view it too.
func (handler *Handler) ProfileGate(c *fiber.Ctx) error {
	identity, err := handler.identityFromCookie(c)
	if err != nil {
		return c.Redirect(adminLoginPath, fiber.StatusSeeOther)
	}
	c.Locals(contextIdentityKey, identity)
	return c.Next()
}

func isAdminLoginPath(path string) bool {
	return strings.TrimSuffix(strings.TrimSpace(path), "/") == adminLoginPath
}
