package services

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/cogbio/labsite/internal/models"
	"github.com/cogbio/labsite/internal/session"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers wrong identifier, wrong password, unknown
// account and inactive account alike. Collapsing them prevents account
// enumeration through the login endpoint.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SuperAdminAccountID is the synthetic id of the configuration-derived
// super-admin identity. Persisted account ids start at 1, so it can never
// collide.
const SuperAdminAccountID = 0

// SuperAdmin is the privileged username/password pair from process
// configuration. It is never stored in the credential store.
type SuperAdmin struct {
	Username string
	Password string
}

type AuthAccountRepository interface {
	FindActiveByNormalizedEmail(email string) (models.Account, error)
	UpdateLastLogin(accountID uint, at time.Time) error
}

// AuthService resolves login attempts against the super-admin pair first,
// then the credential store.
type AuthService struct {
	accounts   AuthAccountRepository
	superAdmin SuperAdmin
}

func NewAuthService(accounts AuthAccountRepository, superAdmin SuperAdmin) *AuthService {
	return &AuthService{accounts: accounts, superAdmin: superAdmin}
}

// Login authenticates identifier/secret and returns the session identity.
// On a store-backed success it records the login time; that is the only
// write. Failures are ErrInvalidCredentials except when the store itself is
// unreachable.
func (service *AuthService) Login(identifier string, secret string) (session.Identity, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || secret == "" {
		return session.Identity{}, ErrInvalidCredentials
	}

	// The super-admin pair wins even when the username collides with a
	// stored account's email.
	if service.matchesSuperAdmin(identifier, secret) {
		return session.Identity{
			AccountID: SuperAdminAccountID,
			Email:     service.superAdmin.Username,
			Name:      "Super Admin",
			Role:      models.RoleSuperAdmin,
		}, nil
	}

	account, err := service.accounts.FindActiveByNormalizedEmail(NormalizeEmail(identifier))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return session.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return session.Identity{}, err
	}
	if !VerifyPassword(secret, account.PasswordHash) {
		return session.Identity{}, ErrInvalidCredentials
	}

	if err := service.accounts.UpdateLastLogin(account.ID, time.Now()); err != nil {
		return session.Identity{}, err
	}

	return session.Identity{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		MemberID:  account.MemberID,
	}, nil
}

func (service *AuthService) matchesSuperAdmin(identifier string, secret string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(identifier), []byte(service.superAdmin.Username))
	passwordMatch := subtle.ConstantTimeCompare([]byte(secret), []byte(service.superAdmin.Password))
	return usernameMatch == 1 && passwordMatch == 1
}
