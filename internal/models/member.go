package models

import "time"

const (
	MemberTypePI           = "pi"
	MemberTypeMember       = "member"
	MemberTypeAlumni       = "alumni"
	MemberTypeCollaborator = "collaborator"
)

// Member is a public-facing lab-member profile. It is distinct from an
// Account; an Account may link to at most one Member via Account.MemberID.
type Member struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Degree            string    `json:"degree"`
	Award             string    `json:"award"`
	Description       string    `json:"description"`
	Type              string    `gorm:"not null;default:member" json:"type"`
	Email             string    `json:"email"`
	Title             string    `json:"title"`
	Department        string    `json:"department"`
	Institution       string    `json:"institution"`
	Photo             string    `json:"photo"`
	Phone             string    `json:"phone"`
	Website           string    `json:"website"`
	Biography         string    `json:"biography"`
	ResearchInterests []string  `gorm:"serializer:json" json:"researchInterests"`
	Status            string    `gorm:"not null;default:active" json:"status"`
	CurrentPosition   string    `json:"currentPosition"`
	DisplayOrder      int       `gorm:"not null;default:0" json:"order"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (Member) TableName() string { return "members" }
