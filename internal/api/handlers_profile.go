package api

import "github.com/gofiber/fiber/v2"

// ShowMyProfile resolves the session's linked member profile. A deleted
// profile leaves the account's link dangling, so the lookup may legitimately
// come back empty; that answers 404 rather than pretending a profile exists.
func (handler *Handler) ShowMyProfile(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Redirect(adminLoginPath, fiber.StatusSeeOther)
	}

	if identity.MemberID == nil {
		return errorResponse(c, fiber.StatusNotFound, "Profile not found")
	}

	member, err := handler.repositories.Members.FindByID(*identity.MemberID)
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Profile not found")
	}

	return dataResponse(c, fiber.Map{
		"user":    sessionUserFromIdentity(identity),
		"profile": member,
	})
}
