package api

import (
	"errors"

	"github.com/cogbio/labsite/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetHomepage returns the singleton landing-page content, creating an empty
// row on first read so the admin form always has something to edit.
func (handler *Handler) GetHomepage(c *fiber.Ctx) error {
	var homepage models.Homepage
	err := handler.db.First(&homepage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		homepage = emptyHomepage()
		if err := handler.db.Create(&homepage).Error; err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to load homepage")
		}
	} else if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load homepage")
	}
	return dataResponse(c, homepage)
}

func (handler *Handler) UpdateHomepage(c *fiber.Ctx) error {
	var homepage models.Homepage
	err := handler.db.First(&homepage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		homepage = emptyHomepage()
	} else if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load homepage")
	}

	input := models.Homepage{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.ID = homepage.ID
	input.CreatedAt = homepage.CreatedAt
	if input.AboutContent == nil {
		input.AboutContent = []string{}
	}
	if input.ResearchAreas == nil {
		input.ResearchAreas = []models.ResearchArea{}
	}
	if input.ContactLocation == nil {
		input.ContactLocation = []string{}
	}

	if err := handler.db.Save(&input).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update homepage")
	}
	return dataResponse(c, input)
}

func emptyHomepage() models.Homepage {
	return models.Homepage{
		AboutContent:    []string{},
		ResearchAreas:   []models.ResearchArea{},
		ContactLocation: []string{},
	}
}

type settingInput struct {
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}

func (handler *Handler) ListSettings(c *fiber.Ctx) error {
	settings := make([]models.Setting, 0)
	if err := handler.db.Order("key ASC").Find(&settings).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	return dataResponse(c, settings)
}

// UpsertSetting writes a key/value pair, replacing the value when the key
// already exists.
func (handler *Handler) UpsertSetting(c *fiber.Ctx) error {
	input := settingInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Key == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Key is required")
	}

	var setting models.Setting
	err := handler.db.Where("key = ?", input.Key).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.Setting{Key: input.Key, Value: input.Value}
		if err := handler.db.Create(&setting).Error; err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to save setting")
		}
	case err != nil:
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to save setting")
	default:
		setting.Value = input.Value
		if err := handler.db.Save(&setting).Error; err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to save setting")
		}
	}
	return dataResponse(c, setting)
}
