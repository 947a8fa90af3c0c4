package services

import (
	"errors"

	"github.com/cogbio/labsite/internal/models"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAccountInput = errors.New("invalid account input")
	ErrInvalidRole         = errors.New("invalid account role")

	// ErrEmailTaken is surfaced specifically, unlike credential failures:
	// a duplicate email is a data-entry mistake, not a security boundary.
	ErrEmailTaken = errors.New("email already exists")

	// ErrMemberAlreadyLinked enforces the one-account-per-profile rule at
	// assignment time.
	ErrMemberAlreadyLinked = errors.New("member profile already linked to another account")
)

type AccountStore interface {
	FindByID(accountID uint) (models.Account, error)
	List() ([]models.Account, error)
	ExistsByNormalizedEmail(email string, excludeID uint) (bool, error)
	ExistsActiveWithMember(memberID uint, excludeID uint) (bool, error)
	Create(account *models.Account) error
	Save(account *models.Account) error
	Delete(accountID uint) error
}

// AccountService owns the admin-facing account lifecycle. Passwords are
// hashed whenever they are set and nowhere else.
type AccountService struct {
	accounts AccountStore
}

func NewAccountService(accounts AccountStore) *AccountService {
	return &AccountService{accounts: accounts}
}

// AccountInput carries create/update fields. On update, an empty Password
// keeps the current hash; IsActive nil keeps the current flag.
type AccountInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	MemberID *uint
	IsActive *bool
}

func (service *AccountService) Get(accountID uint) (models.Account, error) {
	account, err := service.accounts.FindByID(accountID)
	if err != nil {
		return models.Account{}, ErrAccountNotFound
	}
	return account, nil
}

func (service *AccountService) List() ([]models.Account, error) {
	return service.accounts.List()
}

func (service *AccountService) Create(input AccountInput) (models.Account, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Name == "" {
		return models.Account{}, ErrInvalidAccountInput
	}

	role, ok := models.ParseRole(input.Role)
	if !ok {
		return models.Account{}, ErrInvalidRole
	}

	taken, err := service.accounts.ExistsByNormalizedEmail(email, 0)
	if err != nil {
		return models.Account{}, err
	}
	if taken {
		return models.Account{}, ErrEmailTaken
	}

	if err := service.checkMemberLink(input.MemberID, 0); err != nil {
		return models.Account{}, err
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         input.Name,
		Role:         role,
		MemberID:     input.MemberID,
		IsActive:     true,
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	if err := service.accounts.Create(&account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (service *AccountService) Update(accountID uint, input AccountInput) (models.Account, error) {
	account, err := service.accounts.FindByID(accountID)
	if err != nil {
		return models.Account{}, ErrAccountNotFound
	}

	if input.Email != "" {
		email := NormalizeEmail(input.Email)
		if email != account.Email {
			taken, err := service.accounts.ExistsByNormalizedEmail(email, accountID)
			if err != nil {
				return models.Account{}, err
			}
			if taken {
				return models.Account{}, ErrEmailTaken
			}
			account.Email = email
		}
	}

	if input.Name != "" {
		account.Name = input.Name
	}

	if input.Role != "" {
		role, ok := models.ParseRole(input.Role)
		if !ok {
			return models.Account{}, ErrInvalidRole
		}
		account.Role = role
	}

	if err := service.checkMemberLink(input.MemberID, accountID); err != nil {
		return models.Account{}, err
	}
	account.MemberID = input.MemberID

	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	if input.Password != "" {
		passwordHash, err := HashPassword(input.Password)
		if err != nil {
			return models.Account{}, err
		}
		account.PasswordHash = passwordHash
	}

	if err := service.accounts.Save(&account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (service *AccountService) Delete(accountID uint) error {
	if err := service.accounts.Delete(accountID); err != nil {
		return ErrAccountNotFound
	}
	return nil
}

func (service *AccountService) checkMemberLink(memberID *uint, excludeID uint) error {
	if memberID == nil {
		return nil
	}
	linked, err := service.accounts.ExistsActiveWithMember(*memberID, excludeID)
	if err != nil {
		return err
	}
	if linked {
		return ErrMemberAlreadyLinked
	}
	return nil
}
