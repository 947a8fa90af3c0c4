package api

import (
	"github.com/cogbio/labsite/internal/config"
	"github.com/cogbio/labsite/internal/db"
	"github.com/cogbio/labsite/internal/services"
	"github.com/cogbio/labsite/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	// authCookieName matches the cookie the public site's frontend expects.
	authCookieName = "admin_auth"

	contextIdentityKey = "current_identity"
)

type Handler struct {
	db             *gorm.DB
	codec          *session.Codec
	log            zerolog.Logger
	cookieSecure   bool
	repositories   *db.Repositories
	authService    *services.AuthService
	accountService *services.AccountService
}

func NewHandler(database *gorm.DB, cfg config.Config, log zerolog.Logger) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:           database,
		codec:        session.NewCodec(cfg.SecretKey),
		log:          log,
		cookieSecure: cfg.Production(),
		repositories: repositories,
		authService: services.NewAuthService(repositories.Accounts, services.SuperAdmin{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		}),
		accountService: services.NewAccountService(repositories.Accounts),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func currentIdentity(c *fiber.Ctx) (session.Identity, bool) {
	identity, ok := c.Locals(contextIdentityKey).(session.Identity)
	return identity, ok
}
