package api

import (
	"errors"

	"github.com/cogbio/labsite/internal/services"
	"github.com/gofiber/fiber/v2"
)

type accountInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
	Role     string `json:"role" form:"role"`
	MemberID *uint  `json:"memberId" form:"member_id"`
	IsActive *bool  `json:"isActive" form:"is_active"`
}

func (input accountInput) toService() services.AccountInput {
	return services.AccountInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Role:     input.Role,
		MemberID: input.MemberID,
		IsActive: input.IsActive,
	}
}

func (handler *Handler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := handler.accountService.List()
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load users")
	}
	return dataResponse(c, accounts)
}

func (handler *Handler) GetAccount(c *fiber.Ctx) error {
	accountID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}
	account, err := handler.accountService.Get(accountID)
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}
	return dataResponse(c, account)
}

func (handler *Handler) CreateAccount(c *fiber.Ctx) error {
	input := accountInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	account, err := handler.accountService.Create(input.toService())
	if err != nil {
		return handler.respondAccountError(c, err)
	}
	return createdResponse(c, account)
}

func (handler *Handler) UpdateAccount(c *fiber.Ctx) error {
	accountID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}
	input := accountInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	account, err := handler.accountService.Update(accountID, input.toService())
	if err != nil {
		return handler.respondAccountError(c, err)
	}
	return dataResponse(c, account)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	accountID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if err := handler.accountService.Delete(accountID); err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}
	return dataResponse(c, fiber.Map{})
}

// respondAccountError maps service errors onto the envelope. Duplicate
// email stays a specific message on purpose; it is a data-entry problem the
// operator needs to see.
func (handler *Handler) respondAccountError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return errorResponse(c, fiber.StatusBadRequest, "Email already exists")
	case errors.Is(err, services.ErrMemberAlreadyLinked):
		return errorResponse(c, fiber.StatusBadRequest, "Member profile already linked to another account")
	case errors.Is(err, services.ErrInvalidRole):
		return errorResponse(c, fiber.StatusBadRequest, "Invalid role")
	case errors.Is(err, services.ErrPasswordRequired):
		return errorResponse(c, fiber.StatusBadRequest, "Password is required")
	case errors.Is(err, services.ErrInvalidAccountInput):
		return errorResponse(c, fiber.StatusBadRequest, "Email and name are required")
	case errors.Is(err, services.ErrAccountNotFound):
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	default:
		handler.log.Error().Err(err).Msg("account operation failed")
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
