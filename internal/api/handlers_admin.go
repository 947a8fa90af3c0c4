package api

import (
	"github.com/cogbio/labsite/internal/models"
	"github.com/gofiber/fiber/v2"
)

// The admin area is rendered by the frontend; these endpoints supply its
// data. The gate has already run by the time they execute.

func (handler *Handler) ShowAdminLogin(c *fiber.Ctx) error {
	return dataResponse(c, fiber.Map{"page": "admin-login"})
}

func (handler *Handler) ShowAdminDashboard(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return c.Redirect(adminLoginPath, fiber.StatusSeeOther)
	}

	counts := fiber.Map{}
	for name, model := range map[string]any{
		"users":        &models.Account{},
		"members":      &models.Member{},
		"publications": &models.Publication{},
		"news":         &models.News{},
		"albums":       &models.Album{},
		"resources":    &models.Resource{},
	} {
		var count int64
		if err := handler.db.Model(model).Count(&count).Error; err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}
		counts[name] = count
	}

	return dataResponse(c, fiber.Map{
		"page":   "admin-dashboard",
		"user":   sessionUserFromIdentity(identity),
		"counts": counts,
	})
}
