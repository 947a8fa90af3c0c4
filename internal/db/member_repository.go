package db

import (
	"github.com/cogbio/labsite/internal/models"
	"gorm.io/gorm"
)

type MemberRepository struct {
	database *gorm.DB
}

func NewMemberRepository(database *gorm.DB) *MemberRepository {
	return &MemberRepository{database: database}
}

func (repo *MemberRepository) FindByID(memberID uint) (models.Member, error) {
	var member models.Member
	if err := repo.database.First(&member, memberID).Error; err != nil {
		return models.Member{}, err
	}
	return member, nil
}

func (repo *MemberRepository) List() ([]models.Member, error) {
	members := make([]models.Member, 0)
	if err := repo.database.Order("display_order ASC, id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *MemberRepository) Create(member *models.Member) error {
	return repo.database.Create(member).Error
}

func (repo *MemberRepository) Save(member *models.Member) error {
	return repo.database.Save(member).Error
}

// Delete removes the profile only. Accounts linking to it keep their
// member_id; profile lookups through such a link answer "not found".
func (repo *MemberRepository) Delete(memberID uint) error {
	result := repo.database.Delete(&models.Member{}, memberID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
