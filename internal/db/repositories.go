package db

import "gorm.io/gorm"

type Repositories struct {
	Accounts *AccountRepository
	Members  *MemberRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(database),
		Members:  NewMemberRepository(database),
	}
}
