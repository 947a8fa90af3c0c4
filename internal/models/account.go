package models

import "time"

// Role is the closed set of account roles. RoleMember and RoleAdmin are the
// only values ever written to storage; RoleSuperAdmin belongs to the single
// configuration-derived identity and must never be persisted.
type Role string

const (
	RoleMember     Role = "member"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole maps a raw string onto a persistable role. The empty string
// falls back to RoleMember, matching the storage default.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleMember, RoleAdmin:
		return Role(raw), true
	case "":
		return RoleMember, true
	default:
		return "", false
	}
}

// Persistable reports whether the role may be stored on an Account.
func (role Role) Persistable() bool {
	return role == RoleMember || role == RoleAdmin
}

// AdminAccess reports whether the role may enter the admin area.
func (role Role) AdminAccess() bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// Account is a login-capable identity. The password hash is excluded from
// every JSON response.
type Account struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Role         Role       `gorm:"not null;default:member" json:"role"`
	MemberID     *uint      `json:"memberId"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Account) TableName() string { return "accounts" }
