package db

import (
	"time"

	"github.com/cogbio/labsite/internal/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	database *gorm.DB
}

func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database}
}

func (repo *AccountRepository) FindByID(accountID uint) (models.Account, error) {
	var account models.Account
	if err := repo.database.First(&account, accountID).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// FindActiveByNormalizedEmail resolves a login identifier. Inactive accounts
// are invisible here on purpose: a deactivated account must fail
// authentication exactly like an unknown one.
func (repo *AccountRepository) FindActiveByNormalizedEmail(email string) (models.Account, error) {
	var account models.Account
	if err := repo.database.
		Where("lower(trim(email)) = ? AND is_active = ?", email, true).
		First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// ExistsByNormalizedEmail reports whether another account already uses the
// email. excludeID skips the account being edited; pass 0 on create.
func (repo *AccountRepository) ExistsByNormalizedEmail(email string, excludeID uint) (bool, error) {
	var matched int64
	query := repo.database.Model(&models.Account{}).
		Where("lower(trim(email)) = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// ExistsActiveWithMember reports whether a different active account already
// links to the given member profile.
func (repo *AccountRepository) ExistsActiveWithMember(memberID uint, excludeID uint) (bool, error) {
	var matched int64
	query := repo.database.Model(&models.Account{}).
		Where("member_id = ? AND is_active = ?", memberID, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AccountRepository) List() ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (repo *AccountRepository) Create(account *models.Account) error {
	return repo.database.Create(account).Error
}

func (repo *AccountRepository) Save(account *models.Account) error {
	return repo.database.Save(account).Error
}

// Delete removes the account permanently; there is no soft delete.
func (repo *AccountRepository) Delete(accountID uint) error {
	result := repo.database.Delete(&models.Account{}, accountID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *AccountRepository) UpdateLastLogin(accountID uint, at time.Time) error {
	return repo.database.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("last_login_at", at).Error
}
