package api

import (
	"errors"

	"github.com/cogbio/labsite/internal/services"
	"github.com/cogbio/labsite/internal/session"
	"github.com/gofiber/fiber/v2"
)

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// sessionUser is the identity payload returned to the browser. It mirrors
// the token claims, never the stored account row.
type sessionUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	MemberID *uint  `json:"memberId,omitempty"`
}

func sessionUserFromIdentity(identity session.Identity) sessionUser {
	return sessionUser{
		ID:       identity.AccountID,
		Email:    identity.Email,
		Role:     string(identity.Role),
		Name:     identity.Name,
		MemberID: identity.MemberID,
	}
}

// Login authenticates and sets the session cookie. Every credential failure
// answers the same 401 body.
func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	identity, err := handler.authService.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid credentials",
			})
		}
		handler.log.Error().Err(err).Msg("login failed against credential store")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	token, err := handler.codec.Sign(identity, session.TokenTTL)
	if err != nil {
		handler.log.Error().Err(err).Msg("session token signing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
		})
	}

	handler.setAuthCookie(c, token)
	handler.log.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("login succeeded")
	return c.JSON(fiber.Map{"success": true, "user": sessionUserFromIdentity(identity)})
}

// WhoAmI is the identity probe. "No session" is a normal state, so the
// status is always 200.
func (handler *Handler) WhoAmI(c *fiber.Ctx) error {
	identity, err := handler.identityFromCookie(c)
	if err != nil {
		return c.JSON(fiber.Map{"success": false, "user": nil})
	}
	return c.JSON(fiber.Map{"success": true, "user": sessionUserFromIdentity(identity)})
}

// Logout clears the session cookie. Idempotent; always succeeds.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"success": true})
}
