package api

import (
	"github.com/cogbio/labsite/internal/models"
	"github.com/gofiber/fiber/v2"
)

type memberInput struct {
	Name              string   `json:"name" form:"name"`
	Degree            string   `json:"degree" form:"degree"`
	Award             string   `json:"award" form:"award"`
	Description       string   `json:"description" form:"description"`
	Type              string   `json:"type" form:"type"`
	Email             string   `json:"email" form:"email"`
	Title             string   `json:"title" form:"title"`
	Department        string   `json:"department" form:"department"`
	Institution       string   `json:"institution" form:"institution"`
	Photo             string   `json:"photo" form:"photo"`
	Phone             string   `json:"phone" form:"phone"`
	Website           string   `json:"website" form:"website"`
	Biography         string   `json:"biography" form:"biography"`
	ResearchInterests []string `json:"researchInterests" form:"research_interests"`
	Status            string   `json:"status" form:"status"`
	CurrentPosition   string   `json:"currentPosition" form:"current_position"`
	DisplayOrder      int      `json:"order" form:"order"`
}

func (input memberInput) apply(member *models.Member) {
	member.Name = input.Name
	member.Degree = input.Degree
	member.Award = input.Award
	member.Description = input.Description
	member.Type = input.Type
	member.Email = input.Email
	member.Title = input.Title
	member.Department = input.Department
	member.Institution = input.Institution
	member.Photo = input.Photo
	member.Phone = input.Phone
	member.Website = input.Website
	member.Biography = input.Biography
	member.ResearchInterests = input.ResearchInterests
	member.Status = input.Status
	member.CurrentPosition = input.CurrentPosition
	member.DisplayOrder = input.DisplayOrder
}

func (handler *Handler) ListMembers(c *fiber.Ctx) error {
	members, err := handler.repositories.Members.List()
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load members")
	}
	return dataResponse(c, members)
}

func (handler *Handler) GetMember(c *fiber.Ctx) error {
	memberID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid member id")
	}
	member, err := handler.repositories.Members.FindByID(memberID)
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Member not found")
	}
	return dataResponse(c, member)
}

func (handler *Handler) CreateMember(c *fiber.Ctx) error {
	input := memberInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Name == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Name is required")
	}

	member := models.Member{}
	input.apply(&member)
	if member.Type == "" {
		member.Type = models.MemberTypeMember
	}
	if member.Status == "" {
		member.Status = "active"
	}
	if member.ResearchInterests == nil {
		member.ResearchInterests = []string{}
	}

	if err := handler.repositories.Members.Create(&member); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create member")
	}
	return createdResponse(c, member)
}

func (handler *Handler) UpdateMember(c *fiber.Ctx) error {
	memberID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid member id")
	}
	member, err := handler.repositories.Members.FindByID(memberID)
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Member not found")
	}

	input := memberInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Name == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Name is required")
	}

	input.apply(&member)
	if member.ResearchInterests == nil {
		member.ResearchInterests = []string{}
	}
	if err := handler.repositories.Members.Save(&member); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	return dataResponse(c, member)
}

func (handler *Handler) DeleteMember(c *fiber.Ctx) error {
	memberID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid member id")
	}
	if err := handler.repositories.Members.Delete(memberID); err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Member not found")
	}
	return dataResponse(c, fiber.Map{})
}
